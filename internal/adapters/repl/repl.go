package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"invoice-builder/internal/app"
	"invoice-builder/internal/core"
)

// Run starts the interactive form session. It reads slash commands from
// reader and dispatches them against the application service. Totals are
// redisplayed automatically after every ledger mutation via the service's
// change hook.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Invoice Builder")
	fmt.Printf("Invoice %s — %s\n", svc.Form().Meta.Number, svc.Form().Meta.Date)
	fmt.Println("Fill in the form with slash commands; /preview opens the printable invoice.")
	fmt.Println("Type /help for all commands.")
	fmt.Println(strings.Repeat("-", 70))

	svc.OnChange(func() {
		fmt.Println(totalsLine(svc.Totals()))
	})

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "items", "i":
			printItems(svc.Items())
			printTotals(svc.Totals())

		case "form", "f":
			printForm(svc.Form())

		case "totals", "t":
			printTotals(svc.Totals())

		case "add":
			handleAddItems(reader, svc)

		case "row":
			svc.AddBlankRow()

		case "edit":
			if len(args) < 3 {
				fmt.Println("Usage: /edit <row> <desc|qty|price> <value>")
				return nil
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid row number: %s\n", args[0])
				return nil
			}
			field, ok := parseField(args[1])
			if !ok {
				fmt.Printf("Unknown field %q. Use desc, qty, or price.\n", args[1])
				return nil
			}
			if _, ok := svc.UpdateItem(n, field, strings.Join(args[2:], " ")); !ok {
				fmt.Printf("No row %d.\n", n)
			}

		case "del", "delete":
			if len(args) < 1 {
				fmt.Println("Usage: /del <row>")
				return nil
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid row number: %s\n", args[0])
				return nil
			}
			if _, ok := svc.RemoveItem(n); !ok {
				fmt.Printf("No row %d.\n", n)
			}

		case "tax":
			if len(args) < 1 {
				fmt.Println("Usage: /tax <percent>")
				return nil
			}
			svc.SetTaxRate(args[0])

		case "ship", "shipping":
			if len(args) < 1 {
				fmt.Println("Usage: /ship <amount>")
				return nil
			}
			svc.SetShipping(args[0])

		case "cost":
			// Actual shipping cost, for the internal discrepancy readout.
			if len(args) < 1 {
				fmt.Println("Usage: /cost <amount>")
				return nil
			}
			svc.SetActualShippingCost(args[0])

		case "biz", "business":
			svc.SetBusiness(handleParty(reader, "Business", svc.Form().Business, true))

		case "cust", "customer":
			svc.SetCustomer(handleParty(reader, "Customer", svc.Form().Customer, false))

		case "meta":
			svc.SetInvoiceMeta(handleMeta(reader, svc.Form().Meta))

		case "notes":
			svc.SetPaymentNotes(handleNotes(reader, svc.Form().PaymentNotes))

		case "preview", "print", "p":
			result, err := svc.PreviewInvoice(ctx)
			if err != nil {
				fmt.Printf("Could not open the print view: %v\n", err)
				fmt.Println("Nothing was changed; try /preview again.")
				return nil
			}
			fmt.Printf("Print view opened: %s\n", result.Handle)
			fmt.Println("Use the browser's dialog to print or save as PDF.")

		case "copy-address", "address":
			result, err := svc.CopyAddressBlock(ctx)
			if err != nil {
				fmt.Println("Fill in at least the customer's name and address first.")
				return nil
			}
			if result.Automatic {
				fmt.Println("Address copied. Paste it into the carrier's address form.")
			}

		case "copy-tracking", "tracking":
			result, err := svc.CopyTracking(ctx)
			if err != nil {
				fmt.Println("No tracking number to copy. Set one with /meta.")
				return nil
			}
			if result.Automatic {
				fmt.Println("Tracking number copied.")
			}

		case "carrier":
			url, err := svc.OpenCarrierSite(ctx)
			if err != nil {
				fmt.Printf("Could not open the carrier site: %v\n", err)
				return nil
			}
			fmt.Printf("Opened %s\n", url)

		case "clear", "reset":
			fmt.Print("Discard the current invoice and start over? (y/n): ")
			choice, _ := reader.ReadString('\n')
			if c := strings.TrimSpace(strings.ToLower(choice)); c == "y" || c == "yes" {
				svc.Reset()
				fmt.Printf("Fresh invoice %s — %s\n", svc.Form().Meta.Number, svc.Form().Meta.Date)
			}

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			if err != nil {
				break
			}
			continue
		}

		if !strings.HasPrefix(input, "/") {
			fmt.Println("Commands start with a slash — type /help.")
			continue
		}

		if dispErr := dispatchSlash(input); dispErr != nil {
			if dispErr == errExit {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Printf("Error: %v\n", dispErr)
		}
		if err != nil {
			break
		}
	}
}

func parseField(s string) (core.ItemField, bool) {
	switch strings.ToLower(s) {
	case "desc", "description":
		return core.FieldDescription, true
	case "qty", "quantity":
		return core.FieldQuantity, true
	case "price", "unitprice":
		return core.FieldUnitPrice, true
	}
	return "", false
}
