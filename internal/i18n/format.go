package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every money label.
const CurrencySymbol = "R$"

// FormatMoney renders amount as "R$ 99,80": two decimals, no grouping.
// English keeps the decimal point.
func FormatMoney(amount decimal.Decimal, locale string) string {
	fixed := amount.StringFixed(2)
	if locale != "en" {
		fixed = strings.Replace(fixed, ".", ",", 1)
	}
	return CurrencySymbol + " " + fixed
}
