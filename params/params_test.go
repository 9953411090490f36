package params

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kova98/redditmcp/enums"
)

func TestNormalizeSubreddit_StripsPrefix(t *testing.T) {
	got, err := NormalizeSubreddit("r/ruby")
	assert.NoError(t, err)
	assert.Equal(t, "ruby", got)

	got, err = NormalizeSubreddit("ruby")
	assert.NoError(t, err)
	assert.Equal(t, "ruby", got)

	got, err = NormalizeSubreddit("R/Ruby")
	assert.NoError(t, err)
	assert.Equal(t, "Ruby", got)
}

func TestNormalizeSubreddit_Trims(t *testing.T) {
	got, err := NormalizeSubreddit("  r/golang  ")
	assert.NoError(t, err)
	assert.Equal(t, "golang", got)
}

func TestNormalizeSubreddit_Rejects(t *testing.T) {
	_, err := NormalizeSubreddit("")
	assert.Error(t, err)

	_, err = NormalizeSubreddit("   ")
	assert.Error(t, err)

	_, err = NormalizeSubreddit("has spaces")
	assert.Error(t, err)

	_, err = NormalizeSubreddit("invalid-name")
	assert.Error(t, err)

	_, err = NormalizeSubreddit("r/")
	assert.Error(t, err)
}

func TestNormalizePostID_StripsPrefix(t *testing.T) {
	got, err := NormalizePostID("t3_abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", got)

	got, err = NormalizePostID("abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestNormalizePostID_PreservesCase(t *testing.T) {
	got, err := NormalizePostID("T3_AbC123")
	assert.NoError(t, err)
	assert.Equal(t, "AbC123", got)
}

func TestNormalizePostID_Rejects(t *testing.T) {
	_, err := NormalizePostID("invalid-id")
	assert.Error(t, err)

	_, err = NormalizePostID("")
	assert.Error(t, err)

	_, err = NormalizePostID("t3_")
	assert.Error(t, err)

	_, err = NormalizePostID("abc_123")
	assert.Error(t, err)
}

func TestNormalizeQuery(t *testing.T) {
	got, err := NormalizeQuery("  hello world  ")
	assert.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = NormalizeQuery("   ")
	assert.Error(t, err)
}

func TestClampInt_ClampsSilently(t *testing.T) {
	assert.Equal(t, 25, ClampInt(999, 10, 1, 25))
	assert.Equal(t, 1, ClampInt(-5, 10, 1, 25))
	assert.Equal(t, 7, ClampInt(7, 10, 1, 25))
}

func TestClampInt_FallsBackOnParseFailure(t *testing.T) {
	assert.Equal(t, 10, ClampInt("bogus", 10, 1, 25))
	assert.Equal(t, 10, ClampInt(nil, 10, 1, 25))
	assert.Equal(t, 10, ClampInt(true, 10, 1, 25))
}

func TestClampInt_AcceptsJSONNumbersAndStrings(t *testing.T) {
	// JSON decodes numbers as float64.
	assert.Equal(t, 15, ClampInt(float64(15), 10, 1, 25))
	assert.Equal(t, 15, ClampInt("15", 10, 1, 25))
	assert.Equal(t, 25, ClampInt(float64(100), 10, 1, 25))
}

func testDefaults() Style {
	return Style{Output: enums.OutputText, Verbosity: enums.VerbosityCompact}
}

func TestParseSearch_Defaults(t *testing.T) {
	req, err := ParseSearch(map[string]any{"query": "golang"}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, "golang", req.Query)
	assert.Equal(t, "", req.Subreddit)
	assert.Equal(t, enums.SortRelevance, req.Sort)
	assert.Equal(t, enums.TimeAll, req.Time)
	assert.Equal(t, SearchLimitDefault, req.Limit)
	assert.Equal(t, enums.OutputText, req.Style.Output)
	assert.Equal(t, enums.VerbosityCompact, req.Style.Verbosity)
}

func TestParseSearch_BadEnumHardRejects(t *testing.T) {
	// Enums reject; integers clamp. The asymmetry is intentional.
	_, err := ParseSearch(map[string]any{"query": "golang", "sort": "bogus"}, testDefaults())
	assert.Error(t, err)

	req, err := ParseSearch(map[string]any{"query": "golang", "limit": float64(999)}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, SearchLimitMax, req.Limit)
}

func TestParseSearch_EmptyEnumValueRejects(t *testing.T) {
	// An explicitly present empty string is not a member; only an absent
	// argument gets the default.
	_, err := ParseSearch(map[string]any{"query": "golang", "sort": ""}, testDefaults())
	assert.Error(t, err)

	_, err = ParseSearch(map[string]any{"query": "golang", "output": ""}, testDefaults())
	assert.Error(t, err)
}

func TestParseSearch_BadTimeRejects(t *testing.T) {
	_, err := ParseSearch(map[string]any{"query": "golang", "time": "fortnight"}, testDefaults())
	assert.Error(t, err)
}

func TestParseSearch_MissingQueryRejects(t *testing.T) {
	_, err := ParseSearch(map[string]any{}, testDefaults())
	assert.Error(t, err)
}

func TestParseSearch_SubredditNormalized(t *testing.T) {
	req, err := ParseSearch(map[string]any{"query": "x", "subreddit": "r/golang"}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, "golang", req.Subreddit)

	_, err = ParseSearch(map[string]any{"query": "x", "subreddit": "bad name"}, testDefaults())
	assert.Error(t, err)
}

func TestParseSearch_StyleOverride(t *testing.T) {
	req, err := ParseSearch(map[string]any{"query": "x", "output": "json", "verbosity": "full"}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, enums.OutputJSON, req.Style.Output)
	assert.Equal(t, enums.VerbosityFull, req.Style.Verbosity)

	_, err = ParseSearch(map[string]any{"query": "x", "output": "xml"}, testDefaults())
	assert.Error(t, err)
}

func TestParsePost_Defaults(t *testing.T) {
	req, err := ParsePost(map[string]any{"post_id": "t3_abc123"}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, "abc123", req.ID)
	assert.Equal(t, CommentLimitDefault, req.CommentLimit)
	assert.Equal(t, CommentDepthDefault, req.CommentDepth)
}

func TestParsePost_ClampsCommentBounds(t *testing.T) {
	req, err := ParsePost(map[string]any{
		"post_id":       "abc123",
		"comment_limit": float64(1000),
		"comment_depth": float64(99),
	}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, CommentLimitMax, req.CommentLimit)
	assert.Equal(t, CommentDepthMax, req.CommentDepth)
}

func TestParseTrending_Defaults(t *testing.T) {
	req, err := ParseTrending(map[string]any{"subreddit": "golang"}, testDefaults())
	assert.NoError(t, err)
	assert.Equal(t, "golang", req.Subreddit)
	assert.Equal(t, enums.TimeDay, req.Time)
	assert.Equal(t, TrendingLimitDefault, req.Limit)
}

func TestParseTrending_MissingSubredditRejects(t *testing.T) {
	_, err := ParseTrending(map[string]any{}, testDefaults())
	assert.Error(t, err)
}
