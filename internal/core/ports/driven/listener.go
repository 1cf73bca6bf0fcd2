package driven

import "time"

// RedirectListener captures the single OAuth authorization redirect on
// a local loopback endpoint. It is a scoped resource: Stop must be
// called on every exit path of an authentication attempt.
type RedirectListener interface {
	// Start begins accepting connections in the background and returns
	// once the listener is bound.
	Start() error

	// AwaitRedirect blocks until a GET matching the configured redirect
	// path arrives, then returns the full redirect URL
	// (scheme + host + path + query). Requests for other paths are
	// ignored, not treated as errors. Fails with domain.ErrAuthTimeout
	// if nothing matching arrives within timeout.
	AwaitRedirect(timeout time.Duration) (string, error)

	// Stop shuts the listener down. It is idempotent and safe to call
	// even if Start was never called.
	Stop() error
}

// Browser opens a URL in the user's default browser. It is an interface
// so the observable side effect can be stubbed in tests.
type Browser interface {
	Open(url string) error
}
