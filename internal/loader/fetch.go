package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves the raw text stored at an address.
type Fetcher interface {
	Fetch(ctx context.Context, address string) (string, error)
}

// StatusError is returned when the store answers with a non-success status.
type StatusError struct {
	Address    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("network response was not ok for %s: %s", e.Address, e.Status)
}

// HTTPFetcher performs one GET per Fetch call. Relative addresses are
// resolved against BaseURL.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL *url.URL
}

// NewHTTPFetcher creates a fetcher for the given base URL. An empty baseURL
// only accepts absolute addresses. timeout of zero means no client timeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	f := &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
		}
		f.BaseURL = u
	}
	return f, nil
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, address string) (string, error) {
	target, err := f.resolve(address)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", address, err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Address: address, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", address, err)
	}
	return string(body), nil
}

func (f *HTTPFetcher) resolve(address string) (string, error) {
	ref, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address %q: %w", address, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	if f.BaseURL == nil {
		return "", fmt.Errorf("relative address %q with no base url", address)
	}
	return f.BaseURL.ResolveReference(ref).String(), nil
}
