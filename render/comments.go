package render

import (
	"fmt"
	"strings"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/models"
)

// Budget bounds a comment-tree traversal: at most MaxDepth levels of replies
// and at most MaxCount comments across the whole tree. MaxCount is a global
// budget, not a per-level one; replies consume from the same pool as their
// ancestors' siblings.
type Budget struct {
	MaxDepth int
	MaxCount int
}

// Entry is one emitted comment. Replies holds the emitted children so a
// strategy can choose between nested and flattened shapes; Depth is the
// distance from the topmost ancestor.
type Entry struct {
	Comment models.Comment
	Depth   int
	Replies []Entry
}

// Reduce walks nodes depth-first in pre-order under the budget and returns
// the emitted entries plus the exact number of comments emitted. Placeholder
// nodes without a body ("load more" markers) are skipped without counting.
// The budget is threaded explicitly; Reduce is pure and reentrant.
func Reduce(nodes []models.CommentNode, budget Budget) ([]Entry, int) {
	return reduce(nodes, 0, budget.MaxDepth, budget.MaxCount)
}

func reduce(nodes []models.CommentNode, depth, depthBudget, countBudget int) ([]Entry, int) {
	var emitted []Entry
	count := 0
	for _, node := range nodes {
		if count >= countBudget {
			break
		}
		comment := node.Data
		if node.Kind == "more" || comment.Body == "" {
			continue
		}
		entry := Entry{Comment: comment, Depth: depth}
		count++
		if depthBudget > 1 {
			children := comment.Replies.Children()
			if len(children) > 0 {
				replies, n := reduce(children, depth+1, depthBudget-1, countBudget-count)
				entry.Replies = replies
				count += n
			}
		}
		emitted = append(emitted, entry)
	}
	return emitted, count
}

// renderCommentsText renders entries as text. Full verbosity keeps the reply
// structure via indentation; compact and minimal flatten the tree into a
// single pre-order list.
func renderCommentsText(entries []Entry, verbosity enums.Verbosity) string {
	var sb strings.Builder
	writeCommentsText(&sb, entries, verbosity)
	return sb.String()
}

func writeCommentsText(sb *strings.Builder, entries []Entry, verbosity enums.Verbosity) {
	for _, entry := range entries {
		comment := entry.Comment
		body := normalizeBody(comment.Body)
		switch verbosity {
		case enums.VerbosityMinimal:
			fmt.Fprintf(sb, "- %s: %s\n", displayAuthor(comment.Author), body)
		case enums.VerbosityFull:
			indent := strings.Repeat("  ", entry.Depth)
			fmt.Fprintf(sb, "%s- u/%s (%d pts):\n", indent, displayAuthor(comment.Author), comment.Score)
			for _, line := range strings.Split(body, "\n") {
				fmt.Fprintf(sb, "%s  %s\n", indent, line)
			}
		default:
			fmt.Fprintf(sb, "- %s (%dp): %s\n", displayAuthor(comment.Author), comment.Score, body)
		}
		writeCommentsText(sb, entry.Replies, verbosity)
	}
}

// renderCommentsJSON renders entries as JSON-ready values. Full verbosity
// nests replies; compact and minimal append them to the same flat list.
func renderCommentsJSON(entries []Entry, verbosity enums.Verbosity) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		value := commentValue(entry.Comment, verbosity)
		if verbosity == enums.VerbosityFull {
			if len(entry.Replies) > 0 {
				value["replies"] = renderCommentsJSON(entry.Replies, verbosity)
			}
			out = append(out, value)
			continue
		}
		out = append(out, value)
		out = append(out, renderCommentsJSON(entry.Replies, verbosity)...)
	}
	return out
}

func commentValue(comment models.Comment, verbosity enums.Verbosity) map[string]any {
	value := map[string]any{
		"author": displayAuthor(comment.Author),
		"body":   normalizeBody(comment.Body),
	}
	if verbosity != enums.VerbosityMinimal {
		value["score"] = comment.Score
	}
	return value
}

func displayAuthor(author string) string {
	if author == "" {
		return "[deleted]"
	}
	return author
}
