package repl

import (
	"bufio"
	"fmt"
	"strings"

	"invoice-builder/internal/app"
	"invoice-builder/internal/core"
)

// handleAddItems runs an interactive bulk item-entry session.
func handleAddItems(reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Enter items. Type 'done' when finished, 'cancel' to abort.")
	fmt.Println("Format per line: <quantity> <price> <description>")
	fmt.Println("  Example: 2 10.00 Widget")

	var added int
	for {
		fmt.Printf("  Item %d: ", added+1)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		switch strings.ToLower(raw) {
		case "cancel":
			fmt.Println("Item entry cancelled; rows already added stay.")
			return
		case "done":
			if added == 0 {
				fmt.Println("No items entered.")
			}
			return
		case "":
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 2 {
			fmt.Println("  Invalid format. Use: <quantity> <price> <description>")
			continue
		}
		svc.AddItem(app.AddItemRequest{
			Quantity:    parts[0],
			UnitPrice:   parts[1],
			Description: strings.Join(parts[2:], " "),
		})
		added++
	}
}

// handleParty prompts for one party's fields. A blank answer keeps the
// current value; "-" clears it. includeEmail is set for the business side.
func handleParty(reader *bufio.Reader, label string, current core.Party, includeEmail bool) core.Party {
	fmt.Printf("%s details (blank keeps current, '-' clears):\n", label)
	current.Name = promptField(reader, "Name", current.Name)
	current.Address = promptAddress(reader, current.Address)
	current.Phone = promptField(reader, "Phone", current.Phone)
	if includeEmail {
		current.Email = promptField(reader, "Email", current.Email)
	}
	return current
}

// handleMeta prompts for the invoice header fields.
func handleMeta(reader *bufio.Reader, current core.InvoiceMeta) core.InvoiceMeta {
	fmt.Println("Invoice details (blank keeps current, '-' clears):")
	current.Number = promptField(reader, "Number", current.Number)
	current.Date = promptField(reader, "Date (YYYY-MM-DD)", current.Date)
	current.Tracking = promptField(reader, "Tracking", current.Tracking)
	return current
}

// handleNotes prompts for the payment notes block, line by line.
func handleNotes(reader *bufio.Reader, current string) string {
	fmt.Println("Payment notes, one line at a time. Blank line finishes; '-' alone clears.")
	return promptBlock(reader, current)
}

func promptField(reader *bufio.Reader, label, current string) string {
	fmt.Printf("  %s [%s]: ", label, current)
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return current
	case "-":
		return ""
	}
	return raw
}

func promptAddress(reader *bufio.Reader, current string) string {
	fmt.Println("  Address, one line at a time. Blank line finishes; '-' alone clears.")
	return promptBlock(reader, current)
}

func promptBlock(reader *bufio.Reader, current string) string {
	var lines []string
	for {
		fmt.Print("  | ")
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if raw == "" {
			break
		}
		if raw == "-" && len(lines) == 0 {
			return ""
		}
		lines = append(lines, raw)
	}
	if len(lines) == 0 {
		return current
	}
	return strings.Join(lines, "\n")
}
