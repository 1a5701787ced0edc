package privat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
)

var (
	errMissingField = errors.New("missing field")
	errNotFinite    = errors.New("not a finite number")
)

type privatRate struct {
	Ccy     string  `json:"ccy"`
	BaseCcy string  `json:"base_ccy"`
	Buy     *amount `json:"buy"`
	Sale    *amount `json:"sale"`
}

// amount is a rate value, the API sends decimal strings like "41.25000"
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(string(bytes.Trim(b, `"`)), 64)
	if err != nil {
		return fmt.Errorf("amount %s: %w", b, err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("amount %s: %w", b, errNotFinite)
	}

	*a = amount(v)

	return nil
}

// Parse decodes the PrivatBank exchange response into a rate table against UAH
func Parse(b []byte) (provider.RateTable, error) {
	var rows []privatRate
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrParse, err)
	}

	table := make(provider.RateTable, len(rows))
	for _, row := range rows {
		if label.Symbol(row.BaseCcy) != label.UAH {
			continue
		}

		symbol := label.Symbol(row.Ccy)
		if _, ok := label.Currencies[symbol]; !ok || symbol == label.UAH {
			continue
		}

		if row.Buy == nil {
			return nil, fmt.Errorf("%w: %s: %v: buy", provider.ErrParse, symbol, errMissingField)
		}

		if row.Sale == nil {
			return nil, fmt.Errorf("%w: %s: %v: sale", provider.ErrParse, symbol, errMissingField)
		}

		table[symbol] = provider.Rate{Buy: float64(*row.Buy), Sell: float64(*row.Sale)}
	}

	return table, nil
}
