package tools

import (
	"encoding/json"
	"fmt"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/params"
)

// The fixed result fragments. Each failure class keeps a distinct identifier
// so a caller can tell a transient fetch problem from a post that never
// existed; an empty result is not a failure at all.

func fetchFailed(style params.Style) string {
	return errorFragment(style, "fetch_failed", "Reddit did not return a result. Try again later.")
}

func notFound(style params.Style, id string) string {
	return errorFragment(style, "not_found", fmt.Sprintf("No post with id %q.", id))
}

func postDataMissing(style params.Style, id string) string {
	return errorFragment(style, "post_data_missing", fmt.Sprintf("Post %q returned no post data.", id))
}

func emptyResult(style params.Style) string {
	if style.Output == enums.OutputJSON {
		return `{"count":0,"results":[]}`
	}
	return "No results found.\n"
}

func errorFragment(style params.Style, code, detail string) string {
	if style.Output == enums.OutputJSON {
		b, _ := json.Marshal(map[string]string{"error": code, "detail": detail})
		return string(b)
	}
	return fmt.Sprintf("Error: %s. %s\n", code, detail)
}
