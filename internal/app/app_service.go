package app

import (
	"context"
	"fmt"
	"time"

	"invoice-builder/internal/config"
	"invoice-builder/internal/core"
	"invoice-builder/internal/render"
)

type appService struct {
	cfg   config.Config
	host  PresentationHost
	clip  ClipboardService
	sites SiteOpener
	now   func() time.Time

	ledger   *core.Ledger
	business core.Party
	customer core.Party
	meta     core.InvoiceMeta
	notes    string
	onChange func()
}

// NewAppService constructs a session-scoped service satisfying
// ApplicationService. The session starts in its Reset state.
func NewAppService(cfg config.Config, host PresentationHost, clip ClipboardService, sites SiteOpener) ApplicationService {
	s := &appService{
		cfg:   cfg,
		host:  host,
		clip:  clip,
		sites: sites,
		now:   time.Now,
	}
	s.Reset()
	return s
}

// Reset discards the session and starts fresh.
func (s *appService) Reset() {
	s.ledger = core.NewLedger()
	s.ledger.AddItem("Item 1", core.ParseAmount("1"), core.ParseAmount("0"))
	s.ledger.AddItem("Item 2", core.ParseAmount("1"), core.ParseAmount("0"))
	s.ledger.OnChange(s.onChange)

	s.business = core.Party{
		Name:    s.cfg.BusinessName,
		Address: s.cfg.BusinessAddress,
		Phone:   s.cfg.BusinessPhone,
		Email:   s.cfg.BusinessEmail,
	}
	s.customer = core.Party{}
	now := s.now()
	s.meta = core.InvoiceMeta{
		Number: core.DefaultInvoiceNumber(now),
		Date:   core.DefaultInvoiceDate(now),
	}
	s.notes = s.cfg.PaymentNotes
}

// OnChange registers the input surface's redisplay hook.
func (s *appService) OnChange(fn func()) {
	s.onChange = fn
	s.ledger.OnChange(fn)
}

// AddItem appends a pre-filled line item row.
func (s *appService) AddItem(req AddItemRequest) *ItemsResult {
	s.ledger.AddItem(req.Description, core.ParseAmount(req.Quantity), core.ParseAmount(req.UnitPrice))
	return s.Items()
}

// AddBlankRow appends a default row.
func (s *appService) AddBlankRow() *ItemsResult {
	s.ledger.AddBlankRow()
	return s.Items()
}

// RemoveItem deletes the 1-based row n.
func (s *appService) RemoveItem(n int) (*ItemsResult, bool) {
	it := s.ledger.ItemAt(n)
	if it == nil {
		return s.Items(), false
	}
	s.ledger.RemoveItem(it)
	return s.Items(), true
}

// UpdateItem writes raw input into one field of the 1-based row n.
func (s *appService) UpdateItem(n int, field core.ItemField, raw string) (*ItemsResult, bool) {
	it := s.ledger.ItemAt(n)
	if it == nil {
		return s.Items(), false
	}
	s.ledger.UpdateItem(it, field, raw)
	return s.Items(), true
}

// SetTaxRate sets the tax rate in percent.
func (s *appService) SetTaxRate(raw string) *TotalsResult {
	s.ledger.SetTaxRate(raw)
	return s.Totals()
}

// SetShipping sets the shipping charge billed on the invoice.
func (s *appService) SetShipping(raw string) *TotalsResult {
	s.ledger.SetShipping(raw)
	return s.Totals()
}

// SetActualShippingCost records the real shipping cost.
func (s *appService) SetActualShippingCost(raw string) *TotalsResult {
	s.ledger.SetActualShippingCost(raw)
	return s.Totals()
}

// SetBusiness replaces the issuing business details.
func (s *appService) SetBusiness(p core.Party) {
	s.business = p
}

// SetCustomer replaces the customer details.
func (s *appService) SetCustomer(p core.Party) {
	s.customer = p
}

// SetInvoiceMeta replaces the invoice header fields.
func (s *appService) SetInvoiceMeta(m core.InvoiceMeta) {
	s.meta = m
}

// SetPaymentNotes replaces the payment instructions block.
func (s *appService) SetPaymentNotes(notes string) {
	s.notes = notes
}

// Form returns the current header fields.
func (s *appService) Form() *FormResult {
	return &FormResult{
		Business:     s.business,
		Customer:     s.customer,
		Meta:         s.meta,
		PaymentNotes: s.notes,
	}
}

// Items returns the visible rows with computed line totals.
func (s *appService) Items() *ItemsResult {
	raw := s.ledger.Items()
	res := &ItemsResult{RowCount: len(raw)}
	for i, it := range raw {
		if it.Blank() {
			continue
		}
		res.Rows = append(res.Rows, ItemRow{
			Index:       i + 1,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal(),
		})
	}
	return res
}

// Totals recomputes the derived money block.
func (s *appService) Totals() *TotalsResult {
	res := &TotalsResult{Totals: s.ledger.ComputeTotals()}
	if d, ok := s.ledger.ShippingDiscrepancy(); ok {
		res.ShippingDiscrepancy = d
		res.HasActualShipping = true
	}
	return res
}

// PreviewInvoice renders the printable document and hands it to the
// presentation host.
func (s *appService) PreviewInvoice(ctx context.Context) (*PreviewResult, error) {
	snap := s.ledger.Snapshot(s.business, s.customer, s.meta, s.notes)
	doc, err := render.Render(snap, render.Options{AutoPrint: true})
	if err != nil {
		return nil, fmt.Errorf("build invoice document: %w", err)
	}
	handle, err := s.host.Present(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("open print view: %w", err)
	}
	return &PreviewResult{Handle: handle}, nil
}

// CopyAddressBlock copies the customer's shipping address block.
func (s *appService) CopyAddressBlock(ctx context.Context) (*CopyResult, error) {
	block := s.customer.AddressBlock()
	if block == "" {
		return nil, ErrNoAddress
	}
	return &CopyResult{Text: block, Automatic: s.clip.Copy(block)}, nil
}

// CopyTracking copies the tracking number.
func (s *appService) CopyTracking(ctx context.Context) (*CopyResult, error) {
	tracking := s.meta.Tracking
	if tracking == "" {
		return nil, ErrNoTracking
	}
	return &CopyResult{Text: tracking, Automatic: s.clip.Copy(tracking)}, nil
}

// OpenCarrierSite opens the configured shipping carrier's website.
func (s *appService) OpenCarrierSite(ctx context.Context) (string, error) {
	url := s.cfg.CarrierURL
	if err := s.sites.OpenSite(ctx, url); err != nil {
		return "", fmt.Errorf("open carrier site %s: %w", url, err)
	}
	return url, nil
}
