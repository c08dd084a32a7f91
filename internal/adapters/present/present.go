// Package present implements the presentation host: rendered invoice
// documents are written to a temporary file and opened in the user's
// browser, which shows the print dialog via the document's own print
// trigger.
package present

import (
	"context"
	"fmt"
	"os"
)

// Host satisfies app.PresentationHost.
type Host struct {
	browser *Browser
}

// NewHost returns a Host that opens documents with browser.
func NewHost(browser *Browser) *Host {
	return &Host{browser: browser}
}

// Present writes doc to a temp file and opens it. When the browser cannot be
// launched the file is removed again — a blocked preview must not leave a
// partial document behind. The returned handle is the file path.
func (h *Host) Present(ctx context.Context, doc []byte) (string, error) {
	f, err := os.CreateTemp("", "invoice-*.html")
	if err != nil {
		return "", fmt.Errorf("create preview file: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(doc); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write preview file: %w", err)
	}

	if err := h.browser.Open(ctx, path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("preview blocked: %w", err)
	}
	return path, nil
}
