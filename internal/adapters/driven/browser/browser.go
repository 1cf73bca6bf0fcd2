// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/quill-labs/notedump/internal/core/ports/driven"
)

// Ensure Opener implements the port.
var _ driven.Browser = (*Opener)(nil)

// Opener launches the platform's default browser.
type Opener struct{}

// New creates a browser opener.
func New() *Opener {
	return &Opener{}
}

// Open opens url in the default browser.
func (Opener) Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
