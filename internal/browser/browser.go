// Package browser opens URLs in the user's default browser.
package browser

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/skratchdot/open-golang/open"
)

// Open launches the default browser at url. Callers should print the URL as
// a fallback since headless environments have no browser to open.
func Open(url string) error {
	err := open.Run(url)
	if err == nil {
		return nil
	}
	slog.Debug("open-golang failed, trying platform-specific command",
		slog.String("error", err.Error()))
	return openPlatformSpecific(url)
}

func openPlatformSpecific(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		for _, browser := range []string{"xdg-open", "x-www-browser", "firefox", "chromium", "google-chrome"} {
			if _, err := exec.LookPath(browser); err == nil {
				cmd = exec.Command(browser, url)
				break
			}
		}
		if cmd == nil {
			return fmt.Errorf("no suitable browser found")
		}
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser command: %w", err)
	}
	return nil
}
