package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals money is rounded to for display.
// Stored values keep full precision.
const DisplayPrecision = 2

// FormatMoney renders an amount for display, e.g. 83.3333 -> "83.33".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
