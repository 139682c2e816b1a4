package currency

// DefaultCode is used when an unknown currency code is requested.
const DefaultCode = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
}

// Symbol returns the display symbol for a currency code, falling back
// to the default currency's symbol for unknown codes.
func Symbol(code string) string {
	if symbol, ok := symbols[code]; ok {
		return symbol
	}
	return symbols[DefaultCode]
}
