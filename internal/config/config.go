package config

import (
	"os"
	"strings"
)

const defaultCarrierURL = "https://pirateship.com"

// Config carries the environment-driven defaults for an invoicing session.
// Everything here is a prefill the user can override interactively.
type Config struct {
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string
	PaymentNotes    string
	CarrierURL      string
	BrowserCommand  string // overrides the per-OS browser launcher
}

// Load reads configuration from the environment. Callers load .env first
// (godotenv in main). Multi-line values use literal "\n" sequences.
func Load() Config {
	cfg := Config{
		BusinessName:    os.Getenv("INVOICE_BIZ_NAME"),
		BusinessAddress: multiline(os.Getenv("INVOICE_BIZ_ADDRESS")),
		BusinessPhone:   os.Getenv("INVOICE_BIZ_PHONE"),
		BusinessEmail:   os.Getenv("INVOICE_BIZ_EMAIL"),
		PaymentNotes:    multiline(os.Getenv("INVOICE_PAY_NOTES")),
		CarrierURL:      defaultCarrierURL,
		BrowserCommand:  os.Getenv("INVOICE_BROWSER"),
	}
	if v := os.Getenv("INVOICE_CARRIER_URL"); v != "" {
		cfg.CarrierURL = v
	}
	return cfg
}

func multiline(v string) string {
	return strings.ReplaceAll(v, `\n`, "\n")
}
