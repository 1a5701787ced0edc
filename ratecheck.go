package ratecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/robotomize/ratecheck/internal/logging"
	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
)

const DefaultThreshold = 0.05

var ErrInvalidThreshold = errors.New("threshold must be a non-negative number")

// DefaultSymbols are the currencies compared on every run
var DefaultSymbols = []label.Symbol{label.USD, label.EUR}

// Notifier sends a notification for a currency whose rates differ too much
type Notifier interface {
	Notify(ctx context.Context, symbol label.Symbol, privat, mono provider.Rate, threshold float64) error
}

type Option func(*Checker)

// WithSymbols overrides the compared currencies
func WithSymbols(symbols ...label.Symbol) Option {
	return func(c *Checker) {
		c.symbols = symbols
	}
}

// WithOutput sets the writer receiving the report, stdout by default
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.out = w
	}
}

// New return a checker comparing the PrivatBank source against the Monobank source
func New(privat, mono provider.Source, notifier Notifier, opts ...Option) *Checker {
	c := &Checker{
		privat:   privat,
		mono:     mono,
		notifier: notifier,
		symbols:  DefaultSymbols,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Checker struct {
	privat   provider.Source
	mono     provider.Source
	notifier Notifier
	symbols  []label.Symbol
	out      io.Writer
}

type Result struct {
	Comparisons []Comparison
	Notified    []label.Symbol
}

// Check fetches both sources, compares them and notifies about every currency over the threshold.
// The first error aborts the run
func (c *Checker) Check(ctx context.Context, threshold float64) (Result, error) {
	var res Result

	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return res, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	logger := logging.FromContext(ctx)

	privatRates, err := c.privat.FetchLatest(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch %s: %w", c.privat.Name(), err)
	}

	monoRates, err := c.mono.FetchLatest(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch %s: %w", c.mono.Name(), err)
	}

	comparisons, err := Compare(
		Table{Source: c.privat.Name(), Rates: privatRates},
		Table{Source: c.mono.Name(), Rates: monoRates},
		c.symbols,
		threshold,
	)
	if err != nil {
		return res, fmt.Errorf("compare: %w", err)
	}

	res.Comparisons = comparisons

	for _, comp := range comparisons {
		logger.Debug("compared", "currency", comp.Symbol, "exceeded", comp.Exceeded)

		if comp.Exceeded {
			if err := c.notifier.Notify(ctx, comp.Symbol, comp.Privat, comp.Mono, threshold); err != nil {
				return res, fmt.Errorf("notify: %w", err)
			}

			res.Notified = append(res.Notified, comp.Symbol)
		}

		for _, line := range comp.Lines() {
			if _, err := fmt.Fprintln(c.out, line); err != nil {
				return res, fmt.Errorf("write report: %w", err)
			}
		}
	}

	return res, nil
}
