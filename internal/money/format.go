// Package money renders USD and IDR amounts the way the app displays them.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	usdPrinter = message.NewPrinter(language.AmericanEnglish)
	idrPrinter = message.NewPrinter(language.Indonesian)
)

// USD formats with two decimals and US grouping, e.g. $1,234.50
func USD(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return usdPrinter.Sprintf("$%.2f", f)
}

// IDR formats whole rupiah with Indonesian grouping, e.g. Rp 7.890.000
func IDR(amount decimal.Decimal) string {
	return idrPrinter.Sprintf("Rp %d", amount.Round(0).IntPart())
}

// Percent formats a signed percentage with two decimals
func Percent(p decimal.Decimal) string {
	return p.Abs().StringFixed(2)
}
