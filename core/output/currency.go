package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mach-cost/core/types"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole US dollars with grouped thousands, e.g. "$12,500"
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%d", rounded.Neg().IntPart())
	}
	return "$" + printer.Sprintf("%d", rounded.IntPart())
}

// FormatPercent renders a percentage with one decimal, e.g. "16.7%"
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// FormatDiscount renders an advertised discount badge
func FormatDiscount(d types.Discount) string {
	switch d.Type {
	case types.DiscountPercentage:
		return fmt.Sprintf("%s%% OFF", d.Value.String())
	case types.DiscountFixed:
		return FormatCurrency(d.Value) + " OFF"
	default:
		return fmt.Sprintf("%s FREE MONTHS", d.Value.String())
	}
}
