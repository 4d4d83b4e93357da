package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
)

const DefaultCode = money.USD

// Valid reports whether code is a known ISO 4217 currency
func Valid(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// Format renders amount like "$1,234.56". Unknown codes fall back to USD.
func Format(amount float64, code string) string {
	code = strings.ToUpper(code)
	if !Valid(code) {
		code = DefaultCode
	}
	return money.NewFromFloat(amount, code).Display()
}
