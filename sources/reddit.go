package sources

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/kova98/redditmcp/config"
	"github.com/kova98/redditmcp/metrics"
)

// Client fetches JSON documents from Reddit's public API. Retry and backoff
// live here; callers see a single fetch-or-fail operation.
type Client struct {
	logger *slog.Logger
	http   *resty.Client
}

func NewClient(logger *slog.Logger, cfg config.AppConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.FetchTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	return &Client{
		logger: logger,
		http:   client,
	}
}

// FetchJSON fetches url and returns the raw JSON body. Network errors,
// non-2xx statuses with retries exhausted, and malformed bodies all collapse
// into a single failure; callers do not distinguish them.
func (c *Client) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	ts := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(url)
	elapsedMs := time.Since(ts).Milliseconds()
	if err != nil {
		metrics.Fetch("error")
		c.logger.Warn("fetch failed", "url", url, "elapsed", elapsedMs, "error", err)
		return nil, errors.Wrap(err, "fetch reddit")
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.Fetch("error")
		c.logger.Warn("fetch failed", "url", url, "elapsed", elapsedMs, "status", resp.StatusCode())
		return nil, errors.Errorf("reddit returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if !json.Valid(body) {
		metrics.Fetch("error")
		return nil, errors.New("reddit returned a malformed body")
	}

	metrics.Fetch("ok")
	c.logger.Debug("fetch", "url", url, "elapsed", elapsedMs, "bytes", len(body))
	return json.RawMessage(body), nil
}
