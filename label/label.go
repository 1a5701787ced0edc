package label

// Symbol is an ISO 4217 alphabetic currency code
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

const (
	USD Symbol = "USD"
	EUR Symbol = "EUR"
	UAH Symbol = "UAH"
)

// Currency describes a currency known to the sources
type Currency struct {
	Symbol Symbol
	Code   int
}

var Currencies = map[Symbol]Currency{
	USD: {Symbol: USD, Code: 840},
	EUR: {Symbol: EUR, Code: 978},
	UAH: {Symbol: UAH, Code: 980},
}

// ByCode looks up a currency by its ISO 4217 numeric code
func ByCode(code int) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}

	return Currency{}, false
}
