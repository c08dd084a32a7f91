package app

import (
	"context"
	"errors"

	"invoice-builder/internal/core"
)

// ErrNoAddress is returned by CopyAddressBlock when the customer has neither
// a name, an address, nor a phone number to copy.
var ErrNoAddress = errors.New("customer name and address are empty")

// ErrNoTracking is returned by CopyTracking when no tracking number is set.
var ErrNoTracking = errors.New("no tracking number to copy")

// ApplicationService is the single interface all input surfaces (REPL, CLI)
// call. It decouples presentation from the ledger and document logic.
// Implementations must contain no fmt.Println, no ANSI codes, and no display
// logic of any kind.
type ApplicationService interface {
	// AddItem appends a pre-filled line item row. Quantity and price are raw
	// input and zero-coerce when malformed.
	AddItem(req AddItemRequest) *ItemsResult

	// AddBlankRow appends a default row: empty description, quantity 1, price 0.
	AddBlankRow() *ItemsResult

	// RemoveItem deletes the 1-based row n. Returns ok=false when n is out of
	// range; the ledger is untouched in that case.
	RemoveItem(n int) (*ItemsResult, bool)

	// UpdateItem writes raw input into one field of the 1-based row n.
	UpdateItem(n int, field core.ItemField, raw string) (*ItemsResult, bool)

	// SetTaxRate sets the tax rate in percent from raw input.
	SetTaxRate(raw string) *TotalsResult

	// SetShipping sets the shipping charge billed on the invoice.
	SetShipping(raw string) *TotalsResult

	// SetActualShippingCost records the real shipping cost, enabling the
	// discrepancy readout in TotalsResult. Internal only; never rendered.
	SetActualShippingCost(raw string) *TotalsResult

	// SetBusiness replaces the issuing business details.
	SetBusiness(p core.Party)

	// SetCustomer replaces the customer details.
	SetCustomer(p core.Party)

	// SetInvoiceMeta replaces the invoice number, date, and tracking number.
	SetInvoiceMeta(m core.InvoiceMeta)

	// SetPaymentNotes replaces the payment instructions block.
	SetPaymentNotes(notes string)

	// Form returns the current header fields for display.
	Form() *FormResult

	// Items returns the visible rows with computed line totals plus the raw
	// row count.
	Items() *ItemsResult

	// Totals recomputes and returns the derived money block.
	Totals() *TotalsResult

	// OnChange registers fn to run after every ledger mutation. The input
	// surface binds its totals redisplay here once, instead of wiring a
	// callback per field.
	OnChange(fn func())

	// PreviewInvoice snapshots the session, renders the printable document,
	// and hands it to the presentation host. Fails without touching session
	// state when the host cannot open a viewing context.
	PreviewInvoice(ctx context.Context) (*PreviewResult, error)

	// CopyAddressBlock copies the customer's shipping address block.
	// Returns ErrNoAddress when there is nothing to copy.
	CopyAddressBlock(ctx context.Context) (*CopyResult, error)

	// CopyTracking copies the tracking number. Returns ErrNoTracking when it
	// is unset.
	CopyTracking(ctx context.Context) (*CopyResult, error)

	// OpenCarrierSite opens the configured shipping carrier's website and
	// returns its URL.
	OpenCarrierSite(ctx context.Context) (string, error)

	// Reset discards the session and starts fresh: business prefill from
	// config, today's date, a regenerated invoice number, and two starter
	// rows.
	Reset()
}
