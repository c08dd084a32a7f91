package cli

import "invoice-builder/internal/core"

// InvoiceFile is the JSON document accepted by the render subcommand.
// Numeric fields are strings and follow the same zero-coercion rules as
// interactive input: blank or malformed values mean zero.
type InvoiceFile struct {
	Business     PartyFile  `json:"business" jsonschema_description:"The issuing business"`
	Customer     PartyFile  `json:"customer" jsonschema_description:"The billed customer"`
	Number       string     `json:"number" jsonschema_description:"Invoice number, e.g. 20240311-142501"`
	Date         string     `json:"date" jsonschema_description:"Invoice date in YYYY-MM-DD format"`
	Tracking     string     `json:"tracking,omitempty" jsonschema_description:"Optional shipment tracking number; the tracking row is omitted when empty"`
	Items        []ItemFile `json:"items" jsonschema_description:"Line items; fully blank entries are dropped from the document"`
	TaxRate      string     `json:"tax_rate,omitempty" jsonschema_description:"Tax rate in percent as a string; blank or malformed means 0"`
	Shipping     string     `json:"shipping,omitempty" jsonschema_description:"Shipping charge as a string; blank or malformed means 0"`
	PaymentNotes string     `json:"payment_notes,omitempty" jsonschema_description:"Payment instructions; the payment section is omitted when empty"`
}

// PartyFile is one side of the invoice in an InvoiceFile.
type PartyFile struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty" jsonschema_description:"May contain newlines; rendered line by line"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// ItemFile is a single line item in an InvoiceFile.
type ItemFile struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity" jsonschema_description:"Quantity as a string; blank or malformed means 0"`
	UnitPrice   string `json:"unit_price" jsonschema_description:"Unit price as a string; blank or malformed means 0"`
}

// Snapshot converts the file into a render-ready snapshot by replaying it
// through a ledger, so filtering and totals follow the interactive rules
// exactly.
func (f *InvoiceFile) Snapshot() core.InvoiceSnapshot {
	l := core.NewLedger()
	for _, it := range f.Items {
		l.AddItem(it.Description, core.ParseAmount(it.Quantity), core.ParseAmount(it.UnitPrice))
	}
	l.SetTaxRate(f.TaxRate)
	l.SetShipping(f.Shipping)

	business := core.Party{
		Name:    f.Business.Name,
		Address: f.Business.Address,
		Phone:   f.Business.Phone,
		Email:   f.Business.Email,
	}
	customer := core.Party{
		Name:    f.Customer.Name,
		Address: f.Customer.Address,
		Phone:   f.Customer.Phone,
		Email:   f.Customer.Email,
	}
	meta := core.InvoiceMeta{Number: f.Number, Date: f.Date, Tracking: f.Tracking}
	return l.Snapshot(business, customer, meta, f.PaymentNotes)
}
