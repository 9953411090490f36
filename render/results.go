package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/models"
	"github.com/kova98/redditmcp/params"
)

// SearchResults renders a page of search hits. posts must be non-empty; the
// caller handles the empty and failed cases.
func SearchResults(req params.SearchRequest, posts []models.Post) string {
	if req.Style.Output == enums.OutputJSON {
		doc := map[string]any{
			"query":   req.Query,
			"results": previewValues(posts, req.Style.Verbosity),
			"count":   len(posts),
		}
		if req.Subreddit != "" {
			doc["subreddit"] = req.Subreddit
		}
		return marshal(doc)
	}

	var sb strings.Builder
	scope := ""
	if req.Subreddit != "" {
		scope = fmt.Sprintf(" in r/%s", req.Subreddit)
	}
	fmt.Fprintf(&sb, "Search results for %q%s:\n\n", req.Query, scope)
	writePreviews(&sb, posts, req.Style.Verbosity)
	if req.Style.Verbosity == enums.VerbosityFull {
		sb.WriteString("\nUse reddit_post with a post id to read a full discussion.\n")
	}
	return sb.String()
}

// TrendingResults renders a subreddit's top posts for a time window.
func TrendingResults(req params.TrendingRequest, posts []models.Post) string {
	if req.Style.Output == enums.OutputJSON {
		doc := map[string]any{
			"subreddit": req.Subreddit,
			"time":      string(req.Time),
			"results":   previewValues(posts, req.Style.Verbosity),
			"count":     len(posts),
		}
		return marshal(doc)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Top posts in r/%s (past %s):\n\n", req.Subreddit, req.Time)
	writePreviews(&sb, posts, req.Style.Verbosity)
	if req.Style.Verbosity == enums.VerbosityFull {
		sb.WriteString("\nUse reddit_post with a post id to read a full discussion.\n")
	}
	return sb.String()
}

// Thread renders a full post followed by its reduced comment tree.
func Thread(req params.PostRequest, post models.Post, comments []models.CommentNode, now time.Time) string {
	budget := Budget{MaxDepth: req.CommentDepth, MaxCount: req.CommentLimit}
	entries, count := Reduce(comments, budget)

	if req.Style.Output == enums.OutputJSON {
		doc := map[string]any{
			"post":          renderFullPostJSON(post, req.Style.Verbosity, now.Unix()),
			"comments":      renderCommentsJSON(entries, req.Style.Verbosity),
			"comment_count": count,
		}
		return marshal(doc)
	}

	var sb strings.Builder
	sb.WriteString(renderFullPostText(post, req.Style.Verbosity, now.Unix()))
	if count > 0 {
		sb.WriteString("\n## Comments\n\n")
		sb.WriteString(renderCommentsText(entries, req.Style.Verbosity))
	}
	if req.Style.Verbosity == enums.VerbosityFull {
		fmt.Fprintf(&sb, "\nShowing %d comments (depth %d, limit %d).\n", count, req.CommentDepth, req.CommentLimit)
	}
	return sb.String()
}

func writePreviews(sb *strings.Builder, posts []models.Post, verbosity enums.Verbosity) {
	for i, post := range posts {
		sb.WriteString(renderPreviewText(post, i+1, verbosity))
		if verbosity == enums.VerbosityFull {
			sb.WriteString("\n")
		}
	}
}

func previewValues(posts []models.Post, verbosity enums.Verbosity) []map[string]any {
	values := make([]map[string]any, 0, len(posts))
	for _, post := range posts {
		values = append(values, renderPreviewJSON(post, verbosity))
	}
	return values
}

// marshal is used for all JSON output. encoding/json sorts map keys, so the
// same input always yields the same bytes.
func marshal(doc any) string {
	b, err := json.Marshal(doc)
	if err != nil {
		return `{"error":"render_failed"}`
	}
	return string(b)
}
