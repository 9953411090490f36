package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/kova98/redditmcp/metrics"
	"github.com/kova98/redditmcp/models"
	"github.com/kova98/redditmcp/params"
	"github.com/kova98/redditmcp/render"
)

// Fetcher is the one operation the service needs from the outbound HTTP
// layer: fetch the JSON document at url, or fail.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
}

// Service implements the three Reddit tools. It is stateless across calls;
// every request is validated, fetched, and rendered independently.
type Service struct {
	logger   *slog.Logger
	fetcher  Fetcher
	baseURL  string
	defaults params.Style
}

func NewService(logger *slog.Logger, fetcher Fetcher, baseURL string, defaults params.Style) *Service {
	return &Service{
		logger:   logger,
		fetcher:  fetcher,
		baseURL:  baseURL,
		defaults: defaults,
	}
}

// Search runs reddit_search. The returned error is always a validation
// error; fetch and shape failures are reported inside the rendered result.
func (s *Service) Search(ctx context.Context, args map[string]any) (string, error) {
	req, err := params.ParseSearch(args, s.defaults)
	if err != nil {
		metrics.ToolCall("reddit_search", "invalid")
		return "", err
	}

	raw, err := s.fetcher.FetchJSON(ctx, s.searchURL(req))
	if err != nil {
		metrics.ToolCall("reddit_search", "fetch_failed")
		return fetchFailed(req.Style), nil
	}

	var listing models.PostListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		metrics.ToolCall("reddit_search", "fetch_failed")
		return fetchFailed(req.Style), nil
	}

	posts := collectPosts(listing)
	if len(posts) == 0 {
		metrics.ToolCall("reddit_search", "empty")
		return emptyResult(req.Style), nil
	}

	metrics.ToolCall("reddit_search", "ok")
	s.logger.Debug("search", "query", req.Query, "subreddit", req.Subreddit, "results", len(posts))
	return render.SearchResults(req, posts), nil
}

// Post runs reddit_post: one post plus its reduced comment tree.
func (s *Service) Post(ctx context.Context, args map[string]any) (string, error) {
	req, err := params.ParsePost(args, s.defaults)
	if err != nil {
		metrics.ToolCall("reddit_post", "invalid")
		return "", err
	}

	raw, err := s.fetcher.FetchJSON(ctx, s.postURL(req))
	if err != nil {
		metrics.ToolCall("reddit_post", "fetch_failed")
		return fetchFailed(req.Style), nil
	}

	// A thread endpoint answers with [postListing, commentListing].
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 2 {
		metrics.ToolCall("reddit_post", "not_found")
		return notFound(req.Style, req.ID), nil
	}

	var postListing models.PostListing
	if err := json.Unmarshal(parts[0], &postListing); err != nil || len(postListing.Data.Children) == 0 {
		metrics.ToolCall("reddit_post", "post_data_missing")
		return postDataMissing(req.Style, req.ID), nil
	}
	post := postListing.Data.Children[0].Data
	if post.ID == "" {
		metrics.ToolCall("reddit_post", "post_data_missing")
		return postDataMissing(req.Style, req.ID), nil
	}

	var commentListing models.CommentListing
	// A broken comment listing still renders the post, with no comments.
	_ = json.Unmarshal(parts[1], &commentListing)

	metrics.ToolCall("reddit_post", "ok")
	s.logger.Debug("post", "id", req.ID, "comment_limit", req.CommentLimit, "comment_depth", req.CommentDepth)
	return render.Thread(req, post, commentListing.Data.Children, time.Now()), nil
}

// Trending runs reddit_trending: a subreddit's top posts for a time window.
func (s *Service) Trending(ctx context.Context, args map[string]any) (string, error) {
	req, err := params.ParseTrending(args, s.defaults)
	if err != nil {
		metrics.ToolCall("reddit_trending", "invalid")
		return "", err
	}

	raw, err := s.fetcher.FetchJSON(ctx, s.trendingURL(req))
	if err != nil {
		metrics.ToolCall("reddit_trending", "fetch_failed")
		return fetchFailed(req.Style), nil
	}

	var listing models.PostListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		metrics.ToolCall("reddit_trending", "fetch_failed")
		return fetchFailed(req.Style), nil
	}

	posts := collectPosts(listing)
	if len(posts) == 0 {
		metrics.ToolCall("reddit_trending", "empty")
		return emptyResult(req.Style), nil
	}

	metrics.ToolCall("reddit_trending", "ok")
	s.logger.Debug("trending", "subreddit", req.Subreddit, "time", req.Time, "results", len(posts))
	return render.TrendingResults(req, posts), nil
}

func (s *Service) searchURL(req params.SearchRequest) string {
	q := url.Values{}
	q.Set("q", req.Query)
	q.Set("sort", string(req.Sort))
	q.Set("t", string(req.Time))
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("raw_json", "1")
	if req.Subreddit != "" {
		q.Set("restrict_sr", "1")
		return fmt.Sprintf("%s/r/%s/search.json?%s", s.baseURL, req.Subreddit, q.Encode())
	}
	return fmt.Sprintf("%s/search.json?%s", s.baseURL, q.Encode())
}

func (s *Service) postURL(req params.PostRequest) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(req.CommentLimit))
	q.Set("depth", strconv.Itoa(req.CommentDepth))
	q.Set("raw_json", "1")
	return fmt.Sprintf("%s/comments/%s.json?%s", s.baseURL, req.ID, q.Encode())
}

func (s *Service) trendingURL(req params.TrendingRequest) string {
	q := url.Values{}
	q.Set("t", string(req.Time))
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("raw_json", "1")
	return fmt.Sprintf("%s/r/%s/top.json?%s", s.baseURL, req.Subreddit, q.Encode())
}

func collectPosts(listing models.PostListing) []models.Post {
	posts := make([]models.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if child.Data.ID == "" {
			continue
		}
		posts = append(posts, child.Data)
	}
	return posts
}
