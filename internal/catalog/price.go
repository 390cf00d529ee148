package catalog

import (
	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatPrice renders a money value for storefront display.
// The amount stays an exact decimal end to end; a value that does not parse
// falls back to the raw "<amount> <currency>" form instead of erroring.
func FormatPrice(m Money) string {
	value, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return m.Amount + " " + m.CurrencyCode
	}

	figure := value.StringFixed(2)
	if symbol, ok := currencySymbols[m.CurrencyCode]; ok {
		return symbol + figure
	}
	return m.CurrencyCode + " " + figure
}
