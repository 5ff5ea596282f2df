package goldprice

import "strings"

// currencyByCountry maps normalized country names to the currency a gold
// quote should be denominated in.
var currencyByCountry = map[string]string{
	"usa":           "USD",
	"united states": "USD",
	"us":            "USD",
	"uk":            "GBP",
	"britain":       "GBP",
	"england":       "GBP",
	"europe":        "EUR",
	"germany":       "EUR",
	"france":        "EUR",
	"japan":         "JPY",
	"canada":        "CAD",
	"australia":     "AUD",
	"india":         "INR",
	"china":         "CNY",
	"saudi arabia":  "SAR",
	"uae":           "AED",
	"egypt":         "EGP",
	"vietnam":       "VND",
	"vn":            "VND",
}

// CurrencyFor resolves a country name (case-insensitive) to its currency
// code. Unmapped countries default to USD.
func CurrencyFor(country string) string {
	if currency, ok := currencyByCountry[strings.ToLower(strings.TrimSpace(country))]; ok {
		return currency
	}
	return "USD"
}
