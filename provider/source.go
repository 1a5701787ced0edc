package provider

import (
	"context"
	"errors"
	"strconv"

	"github.com/robotomize/ratecheck/label"
)

var (
	// ErrNetwork reports a failed fetch: transport error, timeout, non-2xx status or a body that is not JSON
	ErrNetwork = errors.New("network error")
	// ErrParse reports a response body that does not match the schema of the source
	ErrParse = errors.New("parse error")
)

// Source is an interface for getting data from a bank API. Source knows its endpoint and the shape
// of the response and gives back a normalized rate table
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// Name of the bank behind the source
	Name() string

	// FetchLatest requests the endpoint and parses the body into a RateTable
	FetchLatest(ctx context.Context) (RateTable, error)
}

// Rate is a buy/sell pair of one currency against the hryvnia from one bank
type Rate struct {
	Buy  float64
	Sell float64
}

// RateTable keeps rates of a single source by currency symbol
type RateTable map[label.Symbol]Rate

// Lookup returns the rate of the symbol
func (t RateTable) Lookup(symbol label.Symbol) (Rate, bool) {
	r, ok := t[symbol]
	return r, ok
}

// FormatFloat renders a rate or threshold in its shortest form, 27 or 27.15
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
