// Package internal has helpers that are only useful within the telesnap runtime.
package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/usagelab/telesnap/internal/contract"
)

// HTTPFetcher fetches the CSV export over HTTP. The zero timeout of the
// default client is intentional: the export endpoint streams at its own
// pace and the run is a batch job.
type HTTPFetcher struct {
	Client *http.Client
}

var _ contract.Fetcher = &HTTPFetcher{} // Compile-time check

// NewHTTPFetcher returns a fetcher backed by the default HTTP client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

// FetchCSV downloads the export body. Any transport error or non-200
// status is returned as an error; the caller treats it as fatal.
func (f *HTTPFetcher) FetchCSV(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
