package utils

import "github.com/shopspring/decimal"

// CurrencyPrecision is the number of decimals every amount is shown with.
const CurrencyPrecision = 2

// FormatMoney formats an amount with exactly CurrencyPrecision decimals.
// Example: 12.5 returns "12.50", 0.3 returns "0.30".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyPrecision)
}
