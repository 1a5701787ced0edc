package privat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/ratecheck/label"
	"github.com/robotomize/ratecheck/provider"
	"github.com/robotomize/ratecheck/provider/httputil"
)

const testLatestPattern = "/p24api/pubinfo"

func TestSource_Name(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff("PrivatBank", NewSource(http.DefaultClient).Name()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestSource_FetchLatest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		err         error
		expected    provider.RateTable
		handlerFunc http.HandlerFunc
	}{
		{
			name: "fetch_latest_data_matching",
			expected: provider.RateTable{
				label.USD: {Buy: 27.0, Sell: 27.3},
				label.EUR: {Buy: 29.5, Sell: 30.1},
			},
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("coursid") != "11" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[
					{"ccy":"EUR","base_ccy":"UAH","buy":"29.50000","sale":"30.10000"},
					{"ccy":"USD","base_ccy":"UAH","buy":"27.00000","sale":"27.30000"}
				]`))
			},
		},
		{
			name: "fetch_latest_http_not_ok",
			err:  httputil.ErrStatusCode,
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "fetch_latest_schema_mismatch",
			err:  provider.ErrParse,
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"errorDescription":"Too many requests"}`))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc(testLatestPattern, tc.handlerFunc)
			srv := httptest.NewServer(mux)
			t.Cleanup(srv.Close)

			u, err := url.Parse(srv.URL)
			if err != nil {
				t.Fatalf("url parse: %v", err)
			}

			u.Path = testLatestPattern
			u.RawQuery = defaultLatestResource.RawQuery

			source := NewSource(srv.Client(), WithEndpoint(*u))
			table, err := source.FetchLatest(context.Background())
			if !errors.Is(err, tc.err) {
				t.Fatalf("fetch latest: want %v, got %v", tc.err, err)
			}

			if diff := cmp.Diff(tc.expected, table); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
