package helpers

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Birr renders an amount with thousands separators, e.g. "1,234.50 ብር".
func Birr(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%.2f ብር", f)
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
