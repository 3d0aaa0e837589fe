package interfaces

import (
	"context"

	"github.com/ternarybob/reperio/internal/models"
)

// DiscoveryService exposes the discovery and enrichment operations consumed
// by the API/storage layer. All operations return plain data; persistence is
// the caller's concern. Partial results are always well-formed: a failing
// sub-operation (one query, one secondary page, one batch member) is logged
// and skipped, never propagated.
type DiscoveryService interface {
	// DiscoverBusinesses runs the default multi-strategy sweep for a city.
	DiscoverBusinesses(ctx context.Context, city string, limit int) ([]models.BusinessRecord, error)

	// DiscoverByStrategy runs a single named strategy. Unknown strategy IDs
	// fall back to the directories template set; "curated" routes to
	// DiscoverFromCuratedList.
	DiscoverByStrategy(ctx context.Context, city string, strategy string, limit int) ([]models.BusinessRecord, error)

	// DeepSearch runs every strategy for maximum coverage. Slower, finds more.
	DeepSearch(ctx context.Context, city string, limit int) ([]models.BusinessRecord, error)

	// SearchAllCities runs DiscoverBusinesses for every configured city.
	SearchAllCities(ctx context.Context, limitPerCity int) ([]models.BusinessRecord, error)

	// ScrapeWebsiteContacts crawls one URL for contact details, optionally
	// following same-domain contact/about pages.
	ScrapeWebsiteContacts(ctx context.Context, url string, followContactPages bool) *models.ScrapeResult

	// EnrichLead fills missing contact fields on a lead by crawling its
	// website. Existing non-empty fields are preserved.
	EnrichLead(ctx context.Context, lead models.BusinessRecord) models.BusinessRecord

	// EnrichLeadsBatch enriches leads in bounded concurrent windows. Output
	// order and length always match the input.
	EnrichLeadsBatch(ctx context.Context, leads []models.BusinessRecord, maxConcurrent int) []models.BusinessRecord

	// DiscoverFromCuratedList scrapes the hand-maintained company table,
	// optionally filtered by city.
	DiscoverFromCuratedList(ctx context.Context, city string) ([]models.BusinessRecord, error)

	// GetAllCities lists the configured cities with their tiers.
	GetAllCities() []models.CityInfo

	// GetCuratedCompanies returns the curated company table.
	GetCuratedCompanies() []models.CuratedCompany
}
