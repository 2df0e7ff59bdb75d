package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/fisherypulse/councilpulse/pkg/config"
)

const userAgent = "councilpulse-sync/1.0 (+https://github.com/fisherypulse/councilpulse)"

// Client is the shared HTTP client for all source adapters. Requests are rate
// limited per upstream host and retried with exponential backoff on transient
// failures. Council sites are small public services; the limiter keeps sync
// runs polite.
type Client struct {
	http    *http.Client
	rps     rate.Limit
	burst   int
	maxWait time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewClient creates a fetch client from sync configuration
func NewClient(cfg *config.SyncConfig) *Client {
	return &Client{
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		rps:      rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.RequestBurst,
		maxWait:  cfg.RetryMaxElapsed,
		limiters: make(map[string]*rate.Limiter),
	}
}

// limiter returns the rate limiter for one host, creating it on first use
func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[host]
	if !ok {
		l = rate.NewLimiter(c.rps, c.burst)
		c.limiters[host] = l
	}
	return l
}

// Get fetches a URL and returns the response body. Transient failures
// (network errors, 429, 5xx) are retried with exponential backoff until the
// configured elapsed budget runs out; other non-200 statuses fail immediately.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url %q: %w", rawURL, err)
	}

	var body []byte
	fetchFn := func() error {
		if err := c.limiter(u.Host).Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("upstream returned status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("upstream returned status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = c.maxWait

	if err := backoff.Retry(fetchFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	return body, nil
}

// GetJSON fetches a URL and decodes the body into out, returning the raw body
// for archiving
func (c *Client) GetJSON(ctx context.Context, rawURL string, out interface{}) ([]byte, error) {
	body, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return body, nil
}
