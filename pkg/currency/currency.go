// Package currency formats and parses Kenyan Shilling amounts.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the KES display prefix.
const Symbol = "KSh"

var printer = message.NewPrinter(language.MustParse("en-KE"))

// FormatKES renders an amount as "KSh 1,234.50": grouped thousands, exactly
// two decimal places.
func FormatKES(amount decimal.Decimal) string {
	return FormatKESFloat(amount.InexactFloat64())
}

// FormatKESFloat is FormatKES for raw float64 values. NaN and infinities
// format as "KSh 0.00".
func FormatKESFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("%s %.2f", Symbol, amount)
}

// ParseKES strips the currency prefix and thousands separators and parses the
// remainder as a number. Unparseable input yields zero.
func ParseKES(value string) decimal.Decimal {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case 'K', 'S', 'h', ',', ' ', '\t':
			return -1
		}
		return r
	}, value)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ValidKES reports whether value parses to a non-negative amount.
func ValidKES(value string) bool {
	return !ParseKES(value).IsNegative()
}
