package onenote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure Client implements the notebook API surface.
var _ driven.NotebookClient = (*Client)(nil)

// maxErrorBody bounds how much of an error response body is kept for
// the error message.
const maxErrorBody = 512

// Client is a read-only Graph OneNote client bound to one authenticated
// session. Every outbound request goes through Get, which is the only
// place rate limiting is detected and absorbed: a 429 response is
// retried with exponential backoff (MinRetryWait floor, doubling to the
// MaxRetryWait ceiling, no attempt limit) while any other failure is
// returned immediately.
type Client struct {
	http    *http.Client
	cfg     Config
	limiter *rate.Limiter
	log     *slog.Logger

	// sleep is swapped out in tests to observe backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client over the session's HTTP client.
func NewClient(session *domain.Session, cfg Config, log *slog.Logger) *Client {
	return &Client{
		http:    session.HTTP,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:     log,
		sleep:   sleepCtx,
	}
}

// NewFactory returns a NotebookClientFactory using cfg for every client
// it builds.
func NewFactory(cfg Config, log *slog.Logger) driven.NotebookClientFactory {
	return func(session *domain.Session) driven.NotebookClient {
		return NewClient(session, cfg, log)
	}
}

// Get performs an HTTP GET through the session, retrying 429 responses
// until success or a non-retryable failure. The caller owns the
// response body on success.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", url, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			drainBody(resp)
			wait := c.retryWait(attempt)
			c.log.Warn("rate limited, backing off",
				"url", url, "attempt", attempt, "wait", wait.String())
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			msg := readErrorBody(resp)
			drainBody(resp)
			return nil, &APIError{StatusCode: resp.StatusCode, URL: url, Message: msg}
		}

		return resp, nil
	}
}

// GetBytes performs a Get and reads the whole body.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// retryWait computes the backoff before the given retry attempt:
// MinRetryWait doubled per attempt, capped at MaxRetryWait.
func (c *Client) retryWait(attempt int) time.Duration {
	wait := c.cfg.MinRetryWait
	for i := 1; i < attempt; i++ {
		wait *= 2
		if wait >= c.cfg.MaxRetryWait {
			return c.cfg.MaxRetryWait
		}
	}
	if wait > c.cfg.MaxRetryWait {
		wait = c.cfg.MaxRetryWait
	}
	return wait
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// readErrorBody pulls a short prefix of the body for the error message.
func readErrorBody(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
