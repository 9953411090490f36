package params

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// Bounds for the integer arguments. Out-of-range values clamp, they do not
// reject (contrast with enums below, which do).
const (
	SearchLimitDefault = 10
	SearchLimitMin     = 1
	SearchLimitMax     = 25

	TrendingLimitDefault = 10
	TrendingLimitMin     = 1
	TrendingLimitMax     = 25

	CommentLimitDefault = 15
	CommentLimitMin     = 1
	CommentLimitMax     = 200

	CommentDepthDefault = 2
	CommentDepthMin     = 1
	CommentDepthMax     = 5
)

var (
	subredditPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	postIDPattern    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// NormalizeSubreddit trims the raw value and strips a leading "r/" prefix.
// The remainder must be a plain subreddit name.
func NormalizeSubreddit(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && strings.EqualFold(s[:2], "r/") {
		s = s[2:]
	}
	err := validation.Validate(s,
		validation.Required.Error("subreddit cannot be empty"),
		validation.Match(subredditPattern).Error("subreddit may contain only letters, numbers, and underscores"),
	)
	if err != nil {
		return "", errors.Wrap(err, "invalid subreddit")
	}
	return s, nil
}

// NormalizePostID trims the raw value and strips a leading "t3_" kind prefix.
// Case is preserved; Reddit post ids are case-sensitive base36.
func NormalizePostID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= 3 && strings.EqualFold(s[:3], "t3_") {
		s = s[3:]
	}
	err := validation.Validate(s,
		validation.Required.Error("post id cannot be empty"),
		validation.Match(postIDPattern).Error("post id may contain only letters and numbers"),
	)
	if err != nil {
		return "", errors.Wrap(err, "invalid post id")
	}
	return s, nil
}

// NormalizeQuery trims the raw value and rejects empty queries.
func NormalizeQuery(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if err := validation.Validate(s, validation.Required.Error("query cannot be empty")); err != nil {
		return "", errors.Wrap(err, "invalid query")
	}
	return s, nil
}

// ClampInt parses raw as an integer and clamps it into [min, max]. Anything
// unparseable falls back to def. This never errors: bad integers are adjusted
// silently, unlike bad enum values which hard-reject.
func ClampInt(raw any, def, min, max int) int {
	n := def
	switch v := raw.(type) {
	case nil:
	case int:
		n = v
	case float64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			n = parsed
		}
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// enumArg reads a closed-enum argument. Absent means the default; a present
// value that is not a member, the empty string included, is a hard
// validation error.
func enumArg(args map[string]any, key string, allowed []string, def string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Errorf("invalid %s: must be a string", key)
	}
	in := make([]any, len(allowed))
	for i, a := range allowed {
		in[i] = a
	}
	// In skips empty values, so Required carries the empty-string rejection.
	err := validation.Validate(s,
		validation.Required.Error("must be one of "+strings.Join(allowed, ", ")),
		validation.In(in...).Error("must be one of "+strings.Join(allowed, ", ")),
	)
	if err != nil {
		return "", errors.Wrapf(err, "invalid %s %q", key, s)
	}
	return s, nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}
