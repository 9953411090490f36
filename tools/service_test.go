package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/kova98/redditmcp/enums"
	"github.com/kova98/redditmcp/params"
)

type fakeFetcher struct {
	raw     json.RawMessage
	err     error
	lastURL string
}

func (f *fakeFetcher) FetchJSON(_ context.Context, url string) (json.RawMessage, error) {
	f.lastURL = url
	return f.raw, f.err
}

func newTestService(f *fakeFetcher) *Service {
	logger := slog.New(slog.DiscardHandler)
	defaults := params.Style{Output: enums.OutputText, Verbosity: enums.VerbosityCompact}
	return NewService(logger, f, "https://www.reddit.com", defaults)
}

const searchListing = `{"data":{"children":[
	{"kind":"t3","data":{"id":"abc123","title":"Test post","subreddit":"ruby","score":42,"num_comments":7}}
]}}`

const emptyListing = `{"data":{"children":[]}}`

const threadResponse = `[
	{"data":{"children":[{"kind":"t3","data":{"id":"abc123","title":"Test post","subreddit":"ruby","score":42,"num_comments":7,"selftext":"Body text."}}]}},
	{"data":{"children":[
		{"kind":"t1","data":{"author":"alice","score":5,"body":"parent comment","replies":{"data":{"children":[
			{"kind":"t1","data":{"author":"bob","score":2,"body":"child comment","replies":""}}
		]}}}},
		{"kind":"t1","data":{"author":"carol","score":3,"body":"sibling comment","replies":""}}
	]}}
]`

func TestSearch_RendersResults(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(searchListing)}
	service := newTestService(fetcher)

	out, err := service.Search(context.Background(), map[string]any{"query": "test", "subreddit": "ruby"})
	assert.NoError(t, err)
	assert.Contains(t, out, "42p")
	assert.Contains(t, out, "[abc123]")
	assert.Contains(t, fetcher.lastURL, "/r/ruby/search.json")
	assert.Contains(t, fetcher.lastURL, "restrict_sr=1")
	assert.Contains(t, fetcher.lastURL, "q=test")
}

func TestSearch_SiteWideURL(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(searchListing)}
	service := newTestService(fetcher)

	_, err := service.Search(context.Background(), map[string]any{"query": "test"})
	assert.NoError(t, err)
	assert.Contains(t, fetcher.lastURL, "reddit.com/search.json")
	assert.NotContains(t, fetcher.lastURL, "restrict_sr")
}

func TestSearch_FullVerbosity(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(searchListing)}
	service := newTestService(fetcher)

	out, err := service.Search(context.Background(), map[string]any{"query": "test", "verbosity": "full"})
	assert.NoError(t, err)
	assert.Contains(t, out, "42 pts")
	assert.Contains(t, out, "r/ruby")
}

func TestSearch_EmptyResultIsNotFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(emptyListing)}
	service := newTestService(fetcher)

	out, err := service.Search(context.Background(), map[string]any{"query": "nohits"})
	assert.NoError(t, err)
	assert.Equal(t, "No results found.\n", out)
	assert.NotContains(t, out, "fetch_failed")
}

func TestSearch_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	service := newTestService(fetcher)

	out, err := service.Search(context.Background(), map[string]any{"query": "test"})
	assert.NoError(t, err, "fetch failures are content, not call errors")
	assert.Contains(t, out, "fetch_failed")
}

func TestSearch_ValidationError(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(searchListing)}
	service := newTestService(fetcher)

	_, err := service.Search(context.Background(), map[string]any{"query": "test", "sort": "bogus"})
	assert.Error(t, err)
	assert.Empty(t, fetcher.lastURL, "invalid requests never reach the network")
}

func TestPost_RendersThread(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(threadResponse)}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{
		"post_id":       "t3_abc123",
		"comment_depth": float64(2),
		"comment_limit": float64(3),
		"verbosity":     "full",
	})
	assert.NoError(t, err)
	assert.Contains(t, out, "# Test post")
	assert.Contains(t, out, "child comment")
	assert.Contains(t, out, "Showing 3 comments (depth 2, limit 3).")
	assert.Contains(t, fetcher.lastURL, "/comments/abc123.json")
	assert.Contains(t, fetcher.lastURL, "depth=2")
	assert.Contains(t, fetcher.lastURL, "limit=3")
}

func TestPost_DepthOneExcludesChild(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(threadResponse)}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{
		"post_id":       "abc123",
		"comment_depth": float64(1),
		"comment_limit": float64(2),
		"verbosity":     "full",
	})
	assert.NoError(t, err)
	assert.NotContains(t, out, "child comment")
	assert.Contains(t, out, "Showing 2 comments (depth 1, limit 2).")
}

func TestPost_NotFoundOnWrongShape(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(`{"data":{}}`)}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{"post_id": "abc123"})
	assert.NoError(t, err)
	assert.Contains(t, out, "not_found")
}

func TestPost_PostDataMissing(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(`[{"data":{"children":[]}},{"data":{"children":[]}}]`)}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{"post_id": "abc123"})
	assert.NoError(t, err)
	assert.Contains(t, out, "post_data_missing")
}

func TestPost_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{"post_id": "abc123"})
	assert.NoError(t, err)
	assert.Contains(t, out, "fetch_failed")
}

func TestPost_JSONOutput(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(threadResponse)}
	service := newTestService(fetcher)

	out, err := service.Post(context.Background(), map[string]any{"post_id": "abc123", "output": "json"})
	assert.NoError(t, err)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, float64(3), doc["comment_count"])
}

func TestTrending_RendersResults(t *testing.T) {
	fetcher := &fakeFetcher{raw: json.RawMessage(searchListing)}
	service := newTestService(fetcher)

	out, err := service.Trending(context.Background(), map[string]any{"subreddit": "r/ruby", "time": "week"})
	assert.NoError(t, err)
	assert.Contains(t, out, "Top posts in r/ruby (past week):")
	assert.Contains(t, fetcher.lastURL, "/r/ruby/top.json")
	assert.Contains(t, fetcher.lastURL, "t=week")
}

func TestTrending_ValidationError(t *testing.T) {
	fetcher := &fakeFetcher{}
	service := newTestService(fetcher)

	_, err := service.Trending(context.Background(), map[string]any{"subreddit": "bad name"})
	assert.Error(t, err)
	assert.Empty(t, fetcher.lastURL)
}
