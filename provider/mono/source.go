package mono

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/robotomize/ratecheck/provider"
	"github.com/robotomize/ratecheck/provider/httputil"
)

const (
	Name     = "Monobank"
	hostname = "api.monobank.ua"
)

var defaultLatestResource = url.URL{Scheme: "https", Host: hostname, Path: "/bank/currency"}

var _ provider.Source = (*source)(nil)

type Option func(*source)

// WithEndpoint replaces the public API endpoint
func WithEndpoint(u url.URL) Option {
	return func(s *source) {
		s.client.u = u
	}
}

type fetcher struct {
	u url.URL
	httputil.SourceHTTPClient
}

func NewSource(client *http.Client, opts ...Option) *source {
	s := &source{
		client: fetcher{
			u:                defaultLatestResource,
			SourceHTTPClient: httputil.NewHTTPClient(client),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type source struct {
	client fetcher
}

func (s *source) Name() string {
	return Name
}

func (s *source) FetchLatest(ctx context.Context) (provider.RateTable, error) {
	b, err := s.client.GetJSON(ctx, s.client.u)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}

	table, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return table, nil
}
