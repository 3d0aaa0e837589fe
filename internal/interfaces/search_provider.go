package interfaces

import (
	"context"

	"github.com/ternarybob/reperio/internal/models"
)

// SearchProvider abstracts the external web-search backend. A provider
// error on one query is caught by the orchestrator and that query is
// skipped; it never aborts a discovery run.
type SearchProvider interface {
	// Search runs one query and returns up to maxResults ranked hits.
	Search(ctx context.Context, query string, region string, maxResults int) ([]models.SearchHit, error)
}
