//nolint:noctx // Test file uses http.Get for convenience
package oauth

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/notedump/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// freePort finds an available loopback port for a test listener.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func newTestListener(t *testing.T) (*CallbackListener, string) {
	t.Helper()
	base := fmt.Sprintf("http://127.0.0.1:%d", freePort(t))
	l, err := NewCallbackListener(base+"/auth", discardLogger())
	require.NoError(t, err)
	return l, base
}

func TestNewCallbackListener_InvalidURI(t *testing.T) {
	_, err := NewCallbackListener("not a url", discardLogger())
	require.Error(t, err)
}

func TestAwaitRedirect_MatchingRequest(t *testing.T) {
	l, base := newTestListener(t)
	require.NoError(t, l.Start())
	defer l.Stop()

	go func() {
		time.Sleep(100 * time.Millisecond)
		resp, err := http.Get(base + "/auth?code=abc123&state=xyz")
		if err == nil {
			resp.Body.Close()
		}
	}()

	got, err := l.AwaitRedirect(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, base+"/auth?code=abc123&state=xyz", got)
}

func TestAwaitRedirect_Timeout(t *testing.T) {
	l, _ := newTestListener(t)
	require.NoError(t, l.Start())
	defer l.Stop()

	start := time.Now()
	_, err := l.AwaitRedirect(time.Second)
	assert.ErrorIs(t, err, domain.ErrAuthTimeout)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestAwaitRedirect_IgnoresOtherPaths(t *testing.T) {
	l, base := newTestListener(t)
	require.NoError(t, l.Start())
	defer l.Stop()

	go func() {
		// A favicon-style request first; it must be ignored, not
		// treated as the redirect.
		for _, path := range []string{"/favicon.ico", "/auth?code=ok"} {
			resp, err := http.Get(base + path)
			if err == nil {
				resp.Body.Close()
			}
			time.Sleep(50 * time.Millisecond)
		}
	}()

	got, err := l.AwaitRedirect(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, base+"/auth?code=ok", got)
}

func TestHandle_Responds200ToEverything(t *testing.T) {
	l, base := newTestListener(t)
	require.NoError(t, l.Start())
	defer l.Stop()

	for _, path := range []string{"/auth?code=x", "/favicon.ico", "/anything"} {
		resp, err := http.Get(base + path)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), "Authentication successful")
	}
}

func TestStop_Idempotent(t *testing.T) {
	l, _ := newTestListener(t)

	// Never started.
	require.NoError(t, l.Stop())

	require.NoError(t, l.Start())
	require.NoError(t, l.Stop())
	require.NoError(t, l.Stop())
}

func TestStart_PortInUse(t *testing.T) {
	l1, base := newTestListener(t)
	require.NoError(t, l1.Start())
	defer l1.Stop()

	l2, err := NewCallbackListener(base+"/auth", discardLogger())
	require.NoError(t, err)
	err = l2.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestListener_Restartable(t *testing.T) {
	l, base := newTestListener(t)

	require.NoError(t, l.Start())
	require.NoError(t, l.Stop())
	require.NoError(t, l.Start())
	defer l.Stop()

	go func() {
		time.Sleep(50 * time.Millisecond)
		resp, err := http.Get(base + "/auth?code=second")
		if err == nil {
			resp.Body.Close()
		}
	}()

	got, err := l.AwaitRedirect(5 * time.Second)
	require.NoError(t, err)
	assert.Contains(t, got, "code=second")
}
