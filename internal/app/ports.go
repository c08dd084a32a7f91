package app

import "context"

// PresentationHost opens a rendered document in a new viewing context and
// leaves printing to the document's own print trigger. Present returns a
// handle to the opened context (a file path or URL). It fails when the host
// refuses to open a viewing context; in that case no partial document may be
// left behind.
type PresentationHost interface {
	Present(ctx context.Context, doc []byte) (handle string, err error)
}

// ClipboardService copies text on a best-effort basis. The returned bool
// reports whether a fully automatic copy succeeded; when it is false the
// service has already walked its fallback chain and shown the user a manual
// path, so callers treat false as degraded convenience, not failure.
type ClipboardService interface {
	Copy(text string) bool
}

// SiteOpener opens an external website in the user's browser.
type SiteOpener interface {
	OpenSite(ctx context.Context, url string) error
}
