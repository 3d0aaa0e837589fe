package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// maxResponseBytes bounds how much of a page body is read. Contact details
// live in markup, not in multi-megabyte payloads.
const maxResponseBytes = 5 << 20

// NewDefaultHTTPClient creates a simple HTTP client with a timeout
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// Fetcher retrieves pages with browser-like request headers. Redirects are
// followed by the underlying client.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
}

// Compile-time assertion: Fetcher implements PageFetcher
var _ interfaces.PageFetcher = (*Fetcher)(nil)

// NewFetcher creates a page fetcher. An empty userAgent or acceptLanguage
// leaves that header unset.
func NewFetcher(timeout time.Duration, userAgent, acceptLanguage string) *Fetcher {
	return &Fetcher{
		client:         NewDefaultHTTPClient(timeout),
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
	}
}

// Get fetches a URL and returns the final status code plus body. A non-200
// status is not an error here; callers decide how to treat it.
func (f *Fetcher) Get(ctx context.Context, url string) (*models.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.acceptLanguage != "" {
		req.Header.Set("Accept-Language", f.acceptLanguage)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &models.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
