package output

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a value as a dollar amount with two decimal places.
func FormatCurrency(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders a rate-percent value with two decimal places.
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// FormatYears renders a duration in years with two decimal places.
func FormatYears(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
