package httputil

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/robotomize/ratecheck/internal/logging"
	"github.com/robotomize/ratecheck/provider"
)

const defaultUserAgent = "ratecheck/0.1.0"

var (
	ErrStatusCode  = errors.New("http status is not 2xx")
	ErrInvalidJSON = errors.New("response body is not valid json")
)

// NewDefaultClient return preconfigured HTTP client for the bank APIs
func NewDefaultClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConns:          10,
			DisableCompression:    true,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewHTTPClient return prepared SourceHTTPClient
func NewHTTPClient(client *http.Client) SourceHTTPClient {
	return SourceHTTPClient{client: client}
}

type SourceHTTPClient struct {
	client *http.Client
}

func (f SourceHTTPClient) UserAgent() string {
	return defaultUserAgent
}

// GetJSON performs a GET request with a JSON content type and returns the body once it is known to be JSON.
// Every failure wraps provider.ErrNetwork
func (f SourceHTTPClient) GetJSON(ctx context.Context, u url.URL) ([]byte, error) {
	logger := logging.FromContext(ctx)

	start := time.Now()
	b, err := f.fetch(ctx, u)
	if err != nil {
		logger.Debug("fetch failed", "url", u.String(), "error", err)
		return nil, fmt.Errorf("%w: %w", provider.ErrNetwork, err)
	}

	logger.Debug("fetched", "url", u.String(), "bytes", len(b), "elapsed", time.Since(start))

	if !json.Valid(b) {
		return nil, fmt.Errorf("%w: %w", provider.ErrNetwork, ErrInvalidJSON)
	}

	return b, nil
}

func (f SourceHTTPClient) fetch(ctx context.Context, u url.URL) ([]byte, error) {
	req, err := f.prepareRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("build HTTP request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("make HTTP request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("http status: %d, %s: %w", resp.StatusCode, resp.Status, ErrStatusCode)
	}

	var reader io.ReadCloser
	contentType := resp.Header.Get("Content-Type")
	contentEncoding := resp.Header.Get("Content-Encoding")
	switch {
	case strings.Contains(contentType, "application/x-gzip"), strings.Contains(contentEncoding, "gzip"):
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("unable create gzip.NewReader: %w", err)
		}
		reader = gz
		defer reader.Close()

	default:
		reader = resp.Body
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return b, nil
}

func (f SourceHTTPClient) prepareRequest(ctx context.Context, u url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	return req, nil
}
