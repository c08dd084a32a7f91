package core

import "time"

// DefaultInvoiceNumber produces a timestamp-derived identifier such as
// "20240311-142501" from the caller's local clock. It is a suggested default
// the user may override, not a uniqueness guarantee.
func DefaultInvoiceNumber(now time.Time) string {
	return now.Format("20060102-150405")
}

// DefaultInvoiceDate returns the date in the invoice date format, YYYY-MM-DD.
func DefaultInvoiceDate(now time.Time) string {
	return now.Format("2006-01-02")
}
