package present_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"invoice-builder/internal/adapters/present"
)

func TestHost_PresentWritesAndOpens(t *testing.T) {
	// "true" stands in for a browser launcher that accepts the file.
	host := present.NewHost(present.NewBrowser("true"))

	handle, err := host.Present(context.Background(), []byte("<!doctype html><title>x</title>"))
	if err != nil {
		t.Fatalf("Present: %v", err)
	}
	t.Cleanup(func() { os.Remove(handle) })

	data, err := os.ReadFile(handle)
	if err != nil {
		t.Fatalf("reading handle: %v", err)
	}
	if !strings.Contains(string(data), "<!doctype html>") {
		t.Error("presented file should contain the document")
	}
	if filepath.Ext(handle) != ".html" {
		t.Errorf("handle %q should be an .html file", handle)
	}
}

func TestHost_BlockedOpenLeavesNoDocument(t *testing.T) {
	host := present.NewHost(present.NewBrowser("/nonexistent/browser-command"))

	handle, err := host.Present(context.Background(), []byte("<!doctype html>"))
	if err == nil {
		t.Fatal("expected a blocked presentation to fail")
	}
	if handle != "" {
		t.Errorf("failed presentation returned handle %q", handle)
	}

	// No stray invoice-*.html left in the temp dir from this failed attempt.
	matches, _ := filepath.Glob(filepath.Join(os.TempDir(), "invoice-*.html"))
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err == nil && string(data) == "<!doctype html>" {
			t.Errorf("partial document left behind at %s", m)
		}
	}
}
