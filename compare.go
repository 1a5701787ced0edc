package ratecheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
)

// ErrMissingData reports a compared currency absent from one of the rate tables
var ErrMissingData = errors.New("missing data")

const (
	statusSent      = "A message has been sent"
	statusUnchanged = "No significant changes in currency exchange rates."
)

// Table is a rate table with the name of the source it came from
type Table struct {
	Source string
	Rates  provider.RateTable
}

// Comparison is the outcome for one currency
type Comparison struct {
	Symbol   label.Symbol
	Privat   provider.Rate
	Mono     provider.Rate
	Exceeded bool
}

// Lines renders the report of the comparison
func (c Comparison) Lines() []string {
	status := statusUnchanged
	if c.Exceeded {
		status = statusSent
	}

	return []string{
		status,
		fmt.Sprintf("BUY Private = %s Mono = %s", provider.FormatFloat(c.Privat.Buy), provider.FormatFloat(c.Mono.Buy)),
		fmt.Sprintf("SELL Private = %s Mono = %s", provider.FormatFloat(c.Privat.Sell), provider.FormatFloat(c.Mono.Sell)),
	}
}

// Exceeds reports whether buy or sell rates differ by strictly more than the threshold
func Exceeds(a, b provider.Rate, threshold float64) bool {
	return math.Abs(a.Buy-b.Buy) > threshold || math.Abs(a.Sell-b.Sell) > threshold
}

// Compare checks every symbol in both tables. All missing symbols are reported together
// and no comparison is returned unless both tables are complete
func Compare(privat, mono Table, symbols []label.Symbol, threshold float64) ([]Comparison, error) {
	var merr *multierror.Error

	list := make([]Comparison, 0, len(symbols))
	for _, symbol := range symbols {
		a, okA := privat.Rates.Lookup(symbol)
		if !okA {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s not found in %s rates", ErrMissingData, symbol, privat.Source))
		}

		b, okB := mono.Rates.Lookup(symbol)
		if !okB {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s not found in %s rates", ErrMissingData, symbol, mono.Source))
		}

		if !okA || !okB {
			continue
		}

		list = append(list, Comparison{
			Symbol:   symbol,
			Privat:   a,
			Mono:     b,
			Exceeded: Exceeds(a, b, threshold),
		})
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return list, nil
}
