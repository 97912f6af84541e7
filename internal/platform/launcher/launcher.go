package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens a URL in the user's browser.
type Launcher interface {
	Open(ctx context.Context, url string) error
}

type OSLauncher struct{}

func NewOSLauncher() *OSLauncher {
	return &OSLauncher{}
}

func (l *OSLauncher) Open(_ context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("open url: empty target")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("opening urls is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	// Reap the helper without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}
