package present

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Browser launches the platform web browser for files and URLs. An explicit
// command (from config) overrides the per-OS default launcher.
type Browser struct {
	command string
}

// NewBrowser returns a Browser. command may be empty.
func NewBrowser(command string) *Browser {
	return &Browser{command: command}
}

// Open hands target to the browser launcher. It returns once the launcher
// has started; the browser itself runs detached.
func (b *Browser) Open(ctx context.Context, target string) error {
	name, args := b.launcher()
	cmd := exec.CommandContext(ctx, name, append(args, target)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenSite satisfies app.SiteOpener.
func (b *Browser) OpenSite(ctx context.Context, url string) error {
	return b.Open(ctx, url)
}

func (b *Browser) launcher() (string, []string) {
	if b.command != "" {
		return b.command, nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
