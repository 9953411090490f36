package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/models"
)

const (
	previewLimitCompact = 150
	previewLimitFull    = 200
	commentBodyLimit    = 800
	postBodyLimit       = 2000
)

var (
	blankRuns      = regexp.MustCompile(`\n{3,}`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// normalizeBody collapses runs of blank lines to a single blank line, then
// truncates. Truncation is measured after the collapse.
func normalizeBody(s string) string {
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return truncate(s, commentBodyLimit)
}

// previewText flattens whitespace to single spaces and truncates. Empty or
// whitespace-only input renders as an empty string.
func previewText(s string, limit int) string {
	s = strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
	return truncate(s, limit)
}

// truncate cuts at limit characters, not bytes, so multi-byte runes are
// never split.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// ageString humanizes a duration in whole seconds. Divisions floor.
func ageString(elapsed int64) string {
	switch {
	case elapsed < 60:
		return "just now"
	case elapsed < 3600:
		return fmt.Sprintf("%dm ago", elapsed/60)
	case elapsed < 86400:
		return fmt.Sprintf("%dh ago", elapsed/3600)
	case elapsed < 2592000:
		return fmt.Sprintf("%dd ago", elapsed/86400)
	default:
		return fmt.Sprintf("%dmo ago", elapsed/2592000)
	}
}

// externalLink reports the post's link target when the post has no body and
// points outside Reddit.
func externalLink(post models.Post) string {
	if post.URL == "" || strings.Contains(post.URL, "reddit.com") {
		return ""
	}
	return post.URL
}

// renderPreviewText renders one post of a result listing. Full verbosity gets
// a heading and a blockquoted preview; compact and minimal a single line.
func renderPreviewText(post models.Post, index int, verbosity enums.Verbosity) string {
	if verbosity == enums.VerbosityFull {
		var sb strings.Builder
		fmt.Fprintf(&sb, "### %d. %s\n", index, post.Title)
		fmt.Fprintf(&sb, "[%s] r/%s | %d pts | %d comments\n", post.ID, post.Subreddit, post.Score, post.NumComments)
		if preview := previewText(post.Selftext, previewLimitFull); preview != "" {
			fmt.Fprintf(&sb, "> %s\n", preview)
		}
		return sb.String()
	}

	line := fmt.Sprintf("%d. %s [%s] (%dp, %dc)", index, post.Title, post.ID, post.Score, post.NumComments)
	if preview := previewText(post.Selftext, previewLimitCompact); preview != "" {
		line += " " + preview
	}
	return line + "\n"
}

func renderPreviewJSON(post models.Post, verbosity enums.Verbosity) map[string]any {
	value := map[string]any{
		"id":           post.ID,
		"title":        post.Title,
		"score":        post.Score,
		"num_comments": post.NumComments,
	}
	if verbosity != enums.VerbosityMinimal {
		if preview := previewText(post.Selftext, previewLimitCompact); preview != "" {
			value["preview"] = preview
		}
	}
	if verbosity == enums.VerbosityFull {
		value["subreddit"] = post.Subreddit
	}
	return value
}

// renderFullPostText renders the post header of a thread. Full verbosity adds
// author and post age; every verbosity renders the body, or the external link
// when the body is empty.
func renderFullPostText(post models.Post, verbosity enums.Verbosity, nowUnix int64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", post.Title)

	if verbosity == enums.VerbosityFull {
		fmt.Fprintf(&sb, "r/%s | %d pts | %d comments | u/%s",
			post.Subreddit, post.Score, post.NumComments, displayAuthor(post.Author))
		// created_utc is optional upstream; no timestamp, no age.
		if post.CreatedUTC > 0 {
			fmt.Fprintf(&sb, " | %s", ageString(nowUnix-int64(post.CreatedUTC)))
		}
		sb.WriteString("\n")
	} else {
		fmt.Fprintf(&sb, "r/%s | %d pts | %d comments\n", post.Subreddit, post.Score, post.NumComments)
	}

	if body := strings.TrimSpace(post.Selftext); body != "" {
		sb.WriteString("\n")
		sb.WriteString(truncate(blankRuns.ReplaceAllString(body, "\n\n"), postBodyLimit))
		sb.WriteString("\n")
	} else if link := externalLink(post); link != "" {
		fmt.Fprintf(&sb, "\nLink: %s\n", link)
	}
	return sb.String()
}

func renderFullPostJSON(post models.Post, verbosity enums.Verbosity, nowUnix int64) map[string]any {
	value := map[string]any{
		"id":           post.ID,
		"title":        post.Title,
		"subreddit":    post.Subreddit,
		"score":        post.Score,
		"num_comments": post.NumComments,
	}
	if body := strings.TrimSpace(post.Selftext); body != "" {
		value["body"] = truncate(blankRuns.ReplaceAllString(body, "\n\n"), postBodyLimit)
	} else if link := externalLink(post); link != "" {
		value["url"] = link
	}
	if verbosity == enums.VerbosityFull {
		value["author"] = displayAuthor(post.Author)
		if post.CreatedUTC > 0 {
			value["age"] = ageString(nowUnix - int64(post.CreatedUTC))
		}
	}
	return value
}
