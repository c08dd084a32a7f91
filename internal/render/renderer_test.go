package render_test

import (
	"bytes"
	"strings"
	"testing"

	"invoice-builder/internal/core"
	"invoice-builder/internal/render"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleSnapshot() core.InvoiceSnapshot {
	return core.InvoiceSnapshot{
		Business: core.Party{
			Name:    "Acme Supply Co",
			Address: "1 Main St\nSuite 200",
			Phone:   "555-0101",
			Email:   "billing@acme.test",
		},
		Customer: core.Party{
			Name:    "Jo Shopper",
			Address: "2 Oak Ave\nApt 5",
			Phone:   "555-0102",
		},
		Meta: core.InvoiceMeta{
			Number:   "20240311-142501",
			Date:     "2024-03-11",
			Tracking: "9400 1000 0000 0000 0000 01",
		},
		Items: []core.SnapshotItem{
			{Description: "Widget", Quantity: dec("2"), UnitPrice: dec("10.00"), LineTotal: dec("20.00")},
			{Description: "Gadget", Quantity: dec("1"), UnitPrice: dec("5.50"), LineTotal: dec("5.50")},
		},
		Totals: core.Totals{
			Subtotal:       dec("25.50"),
			TaxRatePercent: dec("7"),
			TaxAmount:      dec("1.785"),
			ShippingCharge: dec("3.00"),
			GrandTotal:     dec("30.285"),
		},
		PaymentNotes: "Zelle: billing@acme.test\nDue on receipt",
	}
}

func renderString(t *testing.T, snap core.InvoiceSnapshot, opts render.Options) string {
	t.Helper()
	doc, err := render.Render(snap, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(doc)
}

func TestRender_EscapesUserText(t *testing.T) {
	snap := sampleSnapshot()
	snap.Items[0].Description = `<script>alert("x")</script>`
	snap.Customer.Name = `O'Brien & Sons "Ltd"`

	html := renderString(t, snap, render.Options{})

	if strings.Contains(html, `<script>alert`) {
		t.Error("unescaped script tag made it into the document")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("script tag should render as escaped literal text")
	}
	if strings.Contains(html, `O'Brien & Sons "Ltd"`) {
		t.Error("quotes and ampersand should not appear raw in markup")
	}
}

func TestRender_MultilineFieldsBecomeBreaks(t *testing.T) {
	html := renderString(t, sampleSnapshot(), render.Options{})
	if !strings.Contains(html, "2 Oak Ave<br>Apt 5") {
		t.Error("customer address line break should render as <br>")
	}
	if !strings.Contains(html, "Zelle: billing@acme.test<br>Due on receipt") {
		t.Error("payment notes line break should render as <br>")
	}
}

func TestRender_MultilineEscapesBeforeBreaking(t *testing.T) {
	snap := sampleSnapshot()
	snap.Customer.Address = "2 Oak Ave\n<img src=x>"
	html := renderString(t, snap, render.Options{})
	if strings.Contains(html, "<img") {
		t.Error("markup inside a multi-line field must be escaped")
	}
	if !strings.Contains(html, "2 Oak Ave<br>&lt;img src=x&gt;") {
		t.Error("expected escaped text joined by <br>")
	}
}

func TestRender_MoneyFormatting(t *testing.T) {
	snap := sampleSnapshot()
	snap.Items[0].UnitPrice = dec("1234.5")
	snap.Items[0].LineTotal = dec("2469")

	html := renderString(t, snap, render.Options{})

	if !strings.Contains(html, "$1,234.50") {
		t.Error("unit price should use thousands separators and two decimals")
	}
	if !strings.Contains(html, "$2,469.00") {
		t.Error("line total should use the same currency style")
	}
	// 30.285 rounds to currency precision.
	if !strings.Contains(html, "$30.29") {
		t.Error("grand total should display rounded to cents")
	}
	if !strings.Contains(html, "Tax (7%)") {
		t.Error("tax label should carry the rate")
	}
}

func TestRender_OptionalSectionsOmitted(t *testing.T) {
	snap := sampleSnapshot()
	snap.Meta.Tracking = ""
	snap.PaymentNotes = ""

	html := renderString(t, snap, render.Options{})

	if strings.Contains(html, "Tracking") {
		t.Error("empty tracking number must leave no tracking label")
	}
	if strings.Contains(html, "Payment") {
		t.Error("empty payment notes must leave no payment section")
	}
}

func TestRender_Deterministic(t *testing.T) {
	a, err := render.Render(sampleSnapshot(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := render.Render(sampleSnapshot(), render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("equal snapshots must render byte-identical documents")
	}
}

func TestRender_PrintStyleAndAutoPrint(t *testing.T) {
	plain := renderString(t, sampleSnapshot(), render.Options{})
	if !strings.Contains(plain, "@media print") || !strings.Contains(plain, ".noPrint{ display:none; }") {
		t.Error("document must suppress non-printable affordances when printed")
	}
	if strings.Contains(plain, "window.print()") {
		t.Error("plain document should not auto-print")
	}

	printing := renderString(t, sampleSnapshot(), render.Options{AutoPrint: true})
	if !strings.Contains(printing, "window.print()") {
		t.Error("auto-print document should trigger the print dialog on load")
	}
}

func TestRender_SelfContained(t *testing.T) {
	html := renderString(t, sampleSnapshot(), render.Options{})
	if !strings.HasPrefix(html, "<!doctype html>") {
		t.Error("document should be a complete standalone page")
	}
	for _, want := range []string{"Acme Supply Co", "Jo Shopper", "20240311-142501", "2024-03-11", "Widget", "Gadget"} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing embedded value %q", want)
		}
	}
}
