package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemField identifies which LineItem field an update targets.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "price"
)

// LineItem is one invoice row: a quantity/price pair with a description.
// Rows are mutated in place by the ledger; the zero value is a blank row.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity × unit price.
func (it *LineItem) LineTotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

// Blank reports whether the row carries no data at all: empty description,
// zero quantity, zero price. Blank rows stay in the ledger but are excluded
// from display and export.
func (it *LineItem) Blank() bool {
	return it.Description == "" && it.Quantity.IsZero() && it.UnitPrice.IsZero()
}

// Party is one side of the invoice: the issuing business or the customer.
// Address may span multiple lines.
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// AddressBlock renders the party as a plain-text block suitable for pasting
// into a shipping site's address form. Blank fields produce no line.
func (p Party) AddressBlock() string {
	var lines []string
	for _, field := range []string{p.Name, p.Address, p.Phone} {
		if field = strings.TrimSpace(field); field != "" {
			lines = append(lines, field)
		}
	}
	return strings.Join(lines, "\n")
}

// InvoiceMeta carries the invoice header fields. Tracking is optional and
// renders only when set.
type InvoiceMeta struct {
	Number   string
	Date     string // YYYY-MM-DD
	Tracking string
}

// Totals is the derived money block of the invoice.
type Totals struct {
	Subtotal       decimal.Decimal
	TaxRatePercent decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingCharge decimal.Decimal
	GrandTotal     decimal.Decimal
}

// SnapshotItem is a line item captured for rendering, with its total already
// computed.
type SnapshotItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// InvoiceSnapshot is an immutable capture of everything needed to render one
// invoice document. It holds values only — no references back to the live
// session — so a rendered document stays valid after the form changes.
type InvoiceSnapshot struct {
	Business     Party
	Customer     Party
	Meta         InvoiceMeta
	Items        []SnapshotItem
	Totals       Totals
	PaymentNotes string
}
