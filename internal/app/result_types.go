package app

import (
	"invoice-builder/internal/core"

	"github.com/shopspring/decimal"
)

// ItemRow is one visible line item with its computed total. Index is the
// row's 1-based position in the raw on-screen order, so it stays valid as an
// argument to RemoveItem and UpdateItem.
type ItemRow struct {
	Index       int
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// ItemsResult is returned by every item operation.
type ItemsResult struct {
	Rows     []ItemRow
	RowCount int // raw rows, blank ones included
}

// TotalsResult is returned by totals reads and the rate/charge setters.
type TotalsResult struct {
	Totals core.Totals

	// ShippingDiscrepancy is charge minus actual cost; meaningful only when
	// HasActualShipping is set.
	ShippingDiscrepancy decimal.Decimal
	HasActualShipping   bool
}

// FormResult is the current header state of the session.
type FormResult struct {
	Business     core.Party
	Customer     core.Party
	Meta         core.InvoiceMeta
	PaymentNotes string
}

// PreviewResult is returned by PreviewInvoice.
type PreviewResult struct {
	Handle string // where the presentation host opened the document
}

// CopyResult is returned by the clipboard operations.
type CopyResult struct {
	Text      string
	Automatic bool // false when the manual fallback prompt was used
}
