package mono

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
)

var errMissingField = errors.New("missing field")

// monoRate is a pair quoted by ISO 4217 numeric codes, cross-only pairs carry rateCross alone
type monoRate struct {
	CurrencyCodeA int      `json:"currencyCodeA"`
	CurrencyCodeB int      `json:"currencyCodeB"`
	Date          int64    `json:"date"`
	RateBuy       *float64 `json:"rateBuy"`
	RateSell      *float64 `json:"rateSell"`
	RateCross     *float64 `json:"rateCross"`
}

// Parse decodes the Monobank currency response into a rate table against UAH
func Parse(b []byte) (provider.RateTable, error) {
	var rows []monoRate
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrParse, err)
	}

	uah := label.Currencies[label.UAH]

	table := make(provider.RateTable, len(rows))
	for _, row := range rows {
		if row.CurrencyCodeB != uah.Code {
			continue
		}

		ccy, ok := label.ByCode(row.CurrencyCodeA)
		if !ok || ccy.Symbol == label.UAH {
			continue
		}

		if row.RateBuy == nil {
			return nil, fmt.Errorf("%w: %s: %v: rateBuy", provider.ErrParse, ccy.Symbol, errMissingField)
		}

		if row.RateSell == nil {
			return nil, fmt.Errorf("%w: %s: %v: rateSell", provider.ErrParse, ccy.Symbol, errMissingField)
		}

		table[ccy.Symbol] = provider.Rate{Buy: *row.RateBuy, Sell: *row.RateSell}
	}

	return table, nil
}
