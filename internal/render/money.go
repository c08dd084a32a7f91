package render

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd applies en-US digit grouping. The tool is single-currency,
// single-locale.
var usd = message.NewPrinter(language.AmericanEnglish)

// Money renders a monetary value in the one currency style used for every
// money field: dollar sign, two decimals, thousands separators. Rounding to
// cents happens in decimal space before the value ever touches a float.
func Money(d decimal.Decimal) string {
	return usd.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// Quantity renders a quantity or rate with insignificant zeros trimmed.
func Quantity(d decimal.Decimal) string {
	return d.String()
}
