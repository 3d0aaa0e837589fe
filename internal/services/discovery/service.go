package discovery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/cities"
	"github.com/ternarybob/reperio/internal/services/crawler"
)

// Service is the discovery and enrichment engine. All rate-limiter state
// lives on the session's limiter instance, so independent Service values
// can run concurrently.
type Service struct {
	provider     interfaces.SearchProvider
	crawler      *crawler.Service
	cities       *cities.Service
	limiter      *crawler.RateLimiter
	logger       arbor.ILogger
	region       string
	hitsPerQuery int
	companyDelay time.Duration
}

// Compile-time assertion: Service implements DiscoveryService
var _ interfaces.DiscoveryService = (*Service)(nil)

// NewService creates a discovery service sharing one rate limiter with the
// given crawler.
func NewService(
	provider interfaces.SearchProvider,
	crawlerService *crawler.Service,
	cityService *cities.Service,
	limiter *crawler.RateLimiter,
	config *common.Config,
	logger arbor.ILogger,
) *Service {
	hits := config.Search.HitsPerQuery
	if hits <= 0 {
		hits = 8
	}
	return &Service{
		provider:     provider,
		crawler:      crawlerService,
		cities:       cityService,
		limiter:      limiter,
		logger:       logger,
		region:       config.Search.Region,
		hitsPerQuery: hits,
		companyDelay: config.CompanyDelay(),
	}
}

// GetAllCities lists the configured cities with their tiers.
func (s *Service) GetAllCities() []models.CityInfo {
	return s.cities.GetAllCities()
}

// ScrapeWebsiteContacts crawls one URL for contact details.
func (s *Service) ScrapeWebsiteContacts(ctx context.Context, url string, followContactPages bool) *models.ScrapeResult {
	return s.crawler.ScrapeWebsiteContacts(ctx, url, followContactPages)
}

// EnrichLead fills missing contact fields on a lead from its website.
func (s *Service) EnrichLead(ctx context.Context, lead models.BusinessRecord) models.BusinessRecord {
	return s.crawler.EnrichLead(ctx, lead)
}

// EnrichLeadsBatch enriches leads in bounded concurrent windows.
func (s *Service) EnrichLeadsBatch(ctx context.Context, leads []models.BusinessRecord, maxConcurrent int) []models.BusinessRecord {
	return s.crawler.EnrichLeadsBatch(ctx, leads, maxConcurrent)
}

// newRecord assembles a business record with the session tier lookup and a
// fresh ID.
func (s *Service) newRecord(name, city, bizType, website, source string, priority int) models.BusinessRecord {
	return models.BusinessRecord{
		ID:            uuid.New().String(),
		Name:          name,
		City:          city,
		Tier:          s.cities.TierFor(city),
		Type:          bizType,
		Website:       website,
		Source:        source,
		PriorityScore: priority,
		DiscoveredAt:  time.Now(),
	}
}
