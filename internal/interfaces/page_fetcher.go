package interfaces

import (
	"context"

	"github.com/ternarybob/reperio/internal/models"
)

// PageFetcher abstracts page retrieval for the site crawler. Implementations
// follow redirects, send a browser-like User-Agent and Accept-Language, and
// apply their own per-request timeout. Transport failures are returned as
// errors; non-200 responses are returned as a FetchResult.
type PageFetcher interface {
	Get(ctx context.Context, url string) (*models.FetchResult, error)
}
