package repl

import (
	"fmt"
	"strings"

	"invoice-builder/internal/app"
	"invoice-builder/internal/render"
)

func printItems(result *app.ItemsResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  LINE ITEMS  (%d rows, blank rows hidden)\n", result.RowCount)
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Rows) == 0 {
		fmt.Println("  No items yet. Use /add to enter some.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-4s %-36s %8s %10s %10s\n", "ROW", "DESCRIPTION", "QTY", "PRICE", "TOTAL")
	fmt.Println(strings.Repeat("-", 72))
	for _, row := range result.Rows {
		desc := row.Description
		if len(desc) > 35 {
			desc = desc[:32] + "..."
		}
		fmt.Printf("  %-4d %-36s %8s %10s %10s\n",
			row.Index, desc,
			render.Quantity(row.Quantity),
			render.Money(row.UnitPrice),
			render.Money(row.LineTotal),
		)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printTotals(result *app.TotalsResult) {
	t := result.Totals
	fmt.Println()
	fmt.Println(strings.Repeat("-", 44))
	fmt.Printf("  %-28s %13s\n", "Subtotal", render.Money(t.Subtotal))
	fmt.Printf("  %-28s %13s\n", fmt.Sprintf("Tax (%s%%)", render.Quantity(t.TaxRatePercent)), render.Money(t.TaxAmount))
	fmt.Printf("  %-28s %13s\n", "Shipping", render.Money(t.ShippingCharge))
	fmt.Printf("  %-28s %13s\n", "TOTAL", render.Money(t.GrandTotal))
	if result.HasActualShipping {
		// Internal readout; never part of the printed invoice.
		fmt.Printf("  %-28s %13s\n", "Shipping over/under", render.Money(result.ShippingDiscrepancy))
	}
	fmt.Println(strings.Repeat("-", 44))
}

func totalsLine(result *app.TotalsResult) string {
	t := result.Totals
	return fmt.Sprintf("  subtotal %s | tax %s | shipping %s | total %s",
		render.Money(t.Subtotal), render.Money(t.TaxAmount),
		render.Money(t.ShippingCharge), render.Money(t.GrandTotal))
}

func printForm(result *app.FormResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  INVOICE %s — %s\n", result.Meta.Number, result.Meta.Date)
	if result.Meta.Tracking != "" {
		fmt.Printf("  Tracking: %s\n", result.Meta.Tracking)
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println("  FROM")
	printPartyLines(result.Business.Name, result.Business.Address, result.Business.Phone, result.Business.Email)
	fmt.Println("  BILL TO")
	printPartyLines(result.Customer.Name, result.Customer.Address, result.Customer.Phone, "")
	if result.PaymentNotes != "" {
		fmt.Println("  PAYMENT")
		for _, line := range strings.Split(result.PaymentNotes, "\n") {
			fmt.Printf("    %s\n", line)
		}
	}
	fmt.Println(strings.Repeat("=", 60))
}

func printPartyLines(fields ...string) {
	empty := true
	for _, f := range fields {
		if f == "" {
			continue
		}
		for _, line := range strings.Split(f, "\n") {
			fmt.Printf("    %s\n", line)
		}
		empty = false
	}
	if empty {
		fmt.Println("    (not set)")
	}
}

func printHelp() {
	fmt.Println()
	fmt.Println("INVOICE BUILDER — COMMANDS")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
	fmt.Println("  ITEMS")
	fmt.Println("  /items                     Show line items and totals")
	fmt.Println("  /add                       Enter items (interactive)")
	fmt.Println("  /row                       Append one blank row")
	fmt.Println("  /edit <row> <field> <val>  Change desc, qty, or price of a row")
	fmt.Println("  /del <row>                 Delete a row")
	fmt.Println()
	fmt.Println("  CHARGES")
	fmt.Println("  /tax <percent>             Set the tax rate")
	fmt.Println("  /ship <amount>             Set the shipping charge")
	fmt.Println("  /cost <amount>             Record actual shipping cost (internal)")
	fmt.Println("  /totals                    Show the totals block")
	fmt.Println()
	fmt.Println("  FORM")
	fmt.Println("  /form                      Show the invoice header")
	fmt.Println("  /biz                       Edit business details (interactive)")
	fmt.Println("  /cust                      Edit customer details (interactive)")
	fmt.Println("  /meta                      Edit number, date, tracking (interactive)")
	fmt.Println("  /notes                     Edit payment notes (interactive)")
	fmt.Println()
	fmt.Println("  ACTIONS")
	fmt.Println("  /preview                   Open the printable invoice")
	fmt.Println("  /copy-address              Copy the customer address block")
	fmt.Println("  /copy-tracking             Copy the tracking number")
	fmt.Println("  /carrier                   Open the shipping carrier's site")
	fmt.Println()
	fmt.Println("  SESSION")
	fmt.Println("  /clear                     Start a fresh invoice")
	fmt.Println("  /help                      Show this help")
	fmt.Println("  /exit                      Exit")
	fmt.Println(strings.Repeat("=", 62))
}
