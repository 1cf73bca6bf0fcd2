// Package oauth provides the local HTTP listener that captures the
// OAuth authorization redirect.
package oauth

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/quill-labs/notedump/internal/core/domain"
	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure CallbackListener implements the port.
var _ driven.RedirectListener = (*CallbackListener)(nil)

// CallbackListener runs a short-lived HTTP server on the redirect URI's
// host and port and hands the one meaningful redirect request to the
// waiting caller through a single-slot channel. Every inbound GET gets
// a 200 with a static confirmation page; only requests whose path
// matches the redirect URI's path are delivered to the caller, so
// favicon and preflight requests are tolerated silently.
type CallbackListener struct {
	mu       sync.Mutex
	scheme   string
	host     string
	path     string
	reqChan  chan string
	errChan  chan error
	server   *http.Server
	listener net.Listener
	log      *slog.Logger
}

// NewCallbackListener creates a listener for the given redirect URI,
// e.g. "http://localhost:8000/auth".
func NewCallbackListener(redirectURI string, log *slog.Logger) (*CallbackListener, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("parse redirect URI: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("redirect URI %q has no host", redirectURI)
	}

	return &CallbackListener{
		scheme:  u.Scheme,
		host:    u.Host,
		path:    u.Path,
		reqChan: make(chan string, 1),
		errChan: make(chan error, 1),
		log:     log,
	}, nil
}

// Start begins accepting connections in a background goroutine and
// returns once the listener is bound.
func (l *CallbackListener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/", l.handle)

	l.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", l.host)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.host, err)
	}
	l.listener = listener

	go func() {
		if err := l.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case l.errChan <- err:
			default:
			}
		}
	}()

	l.log.Debug("redirect listener started", "addr", l.host)
	return nil
}

// handle responds 200 with the confirmation page to every request and
// queues the request URI for the waiting caller. The slot holds one
// request; extras are dropped while the waiter drains mismatches.
func (l *CallbackListener) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	select {
	case l.reqChan <- r.URL.RequestURI():
	default:
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, confirmationHTML)
}

// AwaitRedirect blocks until a request matching the configured redirect
// path arrives, then returns the reconstructed full redirect URL.
// Requests for other paths are dequeued and ignored. It fails with
// domain.ErrAuthTimeout when the window elapses.
func (l *CallbackListener) AwaitRedirect(timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case uri := <-l.reqChan:
			if !matchesPath(uri, l.path) {
				l.log.Debug("ignoring non-matching redirect request", "uri", uri)
				continue
			}
			return l.scheme + "://" + l.host + uri, nil
		case err := <-l.errChan:
			return "", fmt.Errorf("redirect listener failed: %w", err)
		case <-ctx.Done():
			return "", domain.ErrAuthTimeout
		}
	}
}

// Stop shuts the listener down. Safe to call if never started, and
// idempotent.
func (l *CallbackListener) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := l.server.Shutdown(ctx)
	l.server = nil
	l.listener = nil
	if err != nil {
		return fmt.Errorf("shutdown redirect listener: %w", err)
	}
	l.log.Debug("redirect listener stopped")
	return nil
}

// Addr returns the bound host:port.
func (l *CallbackListener) Addr() string {
	return l.host
}

func matchesPath(requestURI, expected string) bool {
	path := requestURI
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path == expected
}

const confirmationHTML = `<!DOCTYPE html>
<html>
<head><title>notedump - Authentication</title></head>
<body>
  <p>Authentication successful! You can close this tab and return to the application.</p>
</body>
</html>`
