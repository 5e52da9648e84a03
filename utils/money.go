package utils

import "github.com/shopspring/decimal"

// FormatPrice renders an amount the one way the shop shows money: the
// currency symbol followed by the amount with two decimals and no grouping.
func FormatPrice(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
