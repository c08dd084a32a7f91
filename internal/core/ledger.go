package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Ledger holds the ordered line items plus the two adjustable global charges
// and derives every total from them. Totals are never cached: each read
// recomputes from current state, so displayed numbers cannot go stale.
//
// A ledger belongs to exactly one form session and is not safe for
// concurrent use.
type Ledger struct {
	items    []*LineItem
	taxRate  decimal.Decimal // percent
	shipping decimal.Decimal

	// actualShipping is what shipping really cost. Internal bookkeeping only;
	// it never appears in a snapshot.
	actualShipping    decimal.Decimal
	hasActualShipping bool

	onChange func()
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// OnChange registers fn to run after every mutation. The input surface uses
// it as its single "recompute and redisplay totals" effect, regardless of
// which field changed or how many rows exist.
func (l *Ledger) OnChange(fn func()) {
	l.onChange = fn
}

func (l *Ledger) notify() {
	if l.onChange != nil {
		l.onChange()
	}
}

// AddItem appends a new row and returns it.
func (l *Ledger) AddItem(description string, quantity, unitPrice decimal.Decimal) *LineItem {
	it := &LineItem{
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	l.items = append(l.items, it)
	l.notify()
	return it
}

// AddBlankRow appends a default row: empty description, quantity 1, price 0.
func (l *Ledger) AddBlankRow() *LineItem {
	return l.AddItem("", decimal.NewFromInt(1), decimal.Zero)
}

// RemoveItem deletes a row by identity. Removing an item the ledger does not
// hold is a no-op.
func (l *Ledger) RemoveItem(item *LineItem) {
	for i, it := range l.items {
		if it == item {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.notify()
			return
		}
	}
}

// ItemAt returns the 1-based row n, or nil when out of range.
func (l *Ledger) ItemAt(n int) *LineItem {
	if n < 1 || n > len(l.items) {
		return nil
	}
	return l.items[n-1]
}

// Items returns the raw row list in on-screen order, blank rows included.
func (l *Ledger) Items() []*LineItem {
	return l.items
}

// UpdateItem writes raw user input into one field of an existing row.
// Quantity and price go through the zero-coercion parser; descriptions are
// trimmed.
func (l *Ledger) UpdateItem(item *LineItem, field ItemField, raw string) {
	switch field {
	case FieldDescription:
		item.Description = strings.TrimSpace(raw)
	case FieldQuantity:
		item.Quantity = ParseAmount(raw)
	case FieldUnitPrice:
		item.UnitPrice = ParseAmount(raw)
	}
	l.notify()
}

// SetTaxRate sets the tax rate from raw input, in percent.
func (l *Ledger) SetTaxRate(raw string) {
	l.taxRate = ParseAmount(raw)
	l.notify()
}

// SetShipping sets the shipping charge billed to the customer.
func (l *Ledger) SetShipping(raw string) {
	l.shipping = ParseAmount(raw)
	l.notify()
}

// SetActualShippingCost records what shipping really cost, enabling the
// discrepancy readout.
func (l *Ledger) SetActualShippingCost(raw string) {
	l.actualShipping = ParseAmount(raw)
	l.hasActualShipping = true
	l.notify()
}

// ShippingDiscrepancy returns charged minus actual shipping cost. The bool is
// false until an actual cost has been recorded.
func (l *Ledger) ShippingDiscrepancy() (decimal.Decimal, bool) {
	if !l.hasActualShipping {
		return decimal.Zero, false
	}
	return l.shipping.Sub(l.actualShipping), true
}

// TaxRatePercent returns the current tax rate in percent.
func (l *Ledger) TaxRatePercent() decimal.Decimal {
	return l.taxRate
}

// ShippingCharge returns the current shipping charge.
func (l *Ledger) ShippingCharge() decimal.Decimal {
	return l.shipping
}

// VisibleItems returns the rows that count as present: at least one of
// description, quantity, or price is set. The filtered view feeds display and
// export; the rows themselves stay in the ledger so the user can still fill
// them in.
func (l *Ledger) VisibleItems() []*LineItem {
	var visible []*LineItem
	for _, it := range l.items {
		if !it.Blank() {
			visible = append(visible, it)
		}
	}
	return visible
}

// ComputeTotals derives subtotal, tax amount, and grand total from current
// state. The sum runs over the unfiltered row set — blank rows contribute
// zero either way. Idempotent and side-effect-free.
func (l *Ledger) ComputeTotals() Totals {
	subtotal := decimal.Zero
	for _, it := range l.items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	tax := subtotal.Mul(l.taxRate).Div(oneHundred)
	return Totals{
		Subtotal:       subtotal,
		TaxRatePercent: l.taxRate,
		TaxAmount:      tax,
		ShippingCharge: l.shipping,
		GrandTotal:     subtotal.Add(tax).Add(l.shipping),
	}
}

// Snapshot captures the ledger plus the static party information into an
// immutable value for rendering. Items are the visible rows with their totals
// pre-computed.
func (l *Ledger) Snapshot(business, customer Party, meta InvoiceMeta, paymentNotes string) InvoiceSnapshot {
	visible := l.VisibleItems()
	items := make([]SnapshotItem, 0, len(visible))
	for _, it := range visible {
		items = append(items, SnapshotItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return InvoiceSnapshot{
		Business:     business,
		Customer:     customer,
		Meta:         meta,
		Items:        items,
		Totals:       l.ComputeTotals(),
		PaymentNotes: strings.TrimSpace(paymentNotes),
	}
}
