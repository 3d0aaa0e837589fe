package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/cities"
	"github.com/ternarybob/reperio/internal/services/crawler"
)

// fakeProvider serves the same canned hits for every query, optionally
// failing queries containing errOn. Queries are recorded in order.
type fakeProvider struct {
	hits    []models.SearchHit
	errOn   string
	queries []string
}

func (p *fakeProvider) Search(_ context.Context, query, region string, maxResults int) ([]models.SearchHit, error) {
	p.queries = append(p.queries, query)
	if p.errOn != "" && strings.Contains(query, p.errOn) {
		return nil, fmt.Errorf("provider unavailable")
	}
	if len(p.hits) > maxResults {
		return p.hits[:maxResults], nil
	}
	return p.hits, nil
}

// fakeFetcher serves canned page bodies by URL; anything else 404s.
type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (*models.FetchResult, error) {
	body, ok := f.pages[url]
	if !ok {
		return &models.FetchResult{StatusCode: 404}, nil
	}
	return &models.FetchResult{StatusCode: 200, Body: body}, nil
}

func newTestEngine(t *testing.T, provider *fakeProvider, pages map[string]string) *Service {
	t.Helper()

	config := common.NewDefaultConfig()
	config.Enrichment.BatchDelay = "1ms"
	config.Enrichment.CompanyDelay = "1ms"

	logger := arbor.NewLogger()
	limiter := crawler.NewRateLimiter(1000, 1000)
	crawlerService := crawler.NewService(&fakeFetcher{pages: pages}, limiter, config, logger)
	cityService := cities.NewService(filepath.Join(t.TempDir(), "absent.yaml"), logger)

	return NewService(provider, crawlerService, cityService, limiter, config, logger)
}

var searchHits = []models.SearchHit{
	{
		URL:     "https://www.indiamart.com/acme-sports/",
		Title:   "Acme Sports Pvt Ltd - IndiaMART",
		Snippet: "Leading manufacturer of pickleball paddles. Call 9876543210 for bulk orders.",
	},
	{
		URL:   "https://www.youtube.com/watch?v=abc",
		Title: "Pickleball highlights video with a very watchable rally",
	},
	{
		URL:   "https://acme.in/",
		Title: "AB", // too short after cleaning
	},
	{
		URL:     "https://bharatpickleball.in/",
		Title:   "Bharat Pickleball Store | Home",
		Snippet: "Retail store for paddles and nets. Email: orders@bharatpickleball.in",
	},
}

func TestDiscoverByStrategy_AssemblesRecords(t *testing.T) {
	provider := &fakeProvider{hits: searchHits}
	engine := newTestEngine(t, provider, nil)

	results, err := engine.DiscoverByStrategy(context.Background(), "Mumbai", "directories", 10)
	require.NoError(t, err)

	// Every template returns the same hits, so URL and name deduplication
	// leaves exactly the two eligible distinct businesses.
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "Acme Sports", first.Name)
	assert.Equal(t, "Mumbai", first.City)
	assert.Equal(t, models.TierTwo, first.Tier)
	assert.Equal(t, "Manufacturer", first.Type)
	assert.Equal(t, "https://www.indiamart.com/acme-sports/", first.Website)
	assert.Equal(t, "IndiaMART", first.Source)
	assert.Equal(t, 10, first.PriorityScore)
	assert.Equal(t, "+919876543210", first.Phone)
	assert.NotEmpty(t, first.Description)
	assert.NotEmpty(t, first.SearchQuery)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.DiscoveredAt.IsZero())

	second := results[1]
	assert.Equal(t, "Bharat Pickleball Store", second.Name)
	assert.Equal(t, "Retailer", second.Type)
	assert.Equal(t, "web_search", second.Source)
	assert.Equal(t, 1, second.PriorityScore)
	assert.Equal(t, "orders@bharatpickleball.in", second.Email)
}

func TestDiscoverByStrategy_CitySubstitutedIntoQueries(t *testing.T) {
	provider := &fakeProvider{}
	engine := newTestEngine(t, provider, nil)

	_, err := engine.DiscoverByStrategy(context.Background(), "Pune", "directories", 5)
	require.NoError(t, err)

	require.NotEmpty(t, provider.queries)
	assert.Equal(t, `site:indiamart.com "pickleball" Pune`, provider.queries[0])
	for _, q := range provider.queries {
		assert.NotContains(t, q, "{city}")
	}
}

func TestDiscoverByStrategy_RespectsLimit(t *testing.T) {
	hits := make([]models.SearchHit, 0, 5)
	for i := 0; i < 5; i++ {
		hits = append(hits, models.SearchHit{
			URL:   fmt.Sprintf("https://shop%d.in/", i),
			Title: fmt.Sprintf("Sports Shop Number %d", i),
		})
	}
	provider := &fakeProvider{hits: hits}
	engine := newTestEngine(t, provider, nil)

	results, err := engine.DiscoverByStrategy(context.Background(), "Mumbai", "directories", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestDiscoverByStrategy_ProviderErrorsSkipped(t *testing.T) {
	// Templates mentioning indiamart fail; the rest still produce hits.
	provider := &fakeProvider{hits: searchHits, errOn: "indiamart"}
	engine := newTestEngine(t, provider, nil)

	results, err := engine.DiscoverByStrategy(context.Background(), "Mumbai", "directories", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDiscoverByStrategy_CuratedRoutesToList(t *testing.T) {
	provider := &fakeProvider{}
	engine := newTestEngine(t, provider, map[string]string{
		"https://niviasports.com": `<html><body><p>Email: care@niviasports.com</p></body></html>`,
	})

	results, err := engine.DiscoverByStrategy(context.Background(), "Jalandhar", StrategyCurated, 10)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Nivia Sports", results[0].Name)
	assert.Equal(t, "curated_list", results[0].Source)
	assert.Equal(t, 15, results[0].PriorityScore)
	assert.Equal(t, "care@niviasports.com", results[0].Email)
	// Curated mode never touches the search provider.
	assert.Empty(t, provider.queries)
}

func TestDiscoverBusinesses_EnrichesTopResults(t *testing.T) {
	provider := &fakeProvider{hits: []models.SearchHit{
		{
			URL:   "https://acmesports.in/company/about",
			Title: "Acme Sports Distributor Network",
		},
	}}
	engine := newTestEngine(t, provider, map[string]string{
		"https://acmesports.in/company/about": `<html><body><p>Email: sales@acmesports.in</p></body></html>`,
	})

	results, err := engine.DiscoverBusinesses(context.Background(), "Mumbai", 10)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].PriorityScore)
	// The shallow pass fills the email from the site itself.
	assert.Equal(t, "sales@acmesports.in", results[0].Email)
}

func TestDiscoverBusinesses_SortedByPriority(t *testing.T) {
	provider := &fakeProvider{hits: []models.SearchHit{
		{URL: "https://plainshop.in/", Title: "Plain Sports Shop Mumbai"},
		{URL: "https://www.indiamart.com/topdealer/", Title: "Top Dealer Sporting Goods"},
		{URL: "https://www.justdial.com/Mumbai/middle", Title: "Middle Sports House"},
	}}
	engine := newTestEngine(t, provider, nil)

	results, err := engine.DiscoverBusinesses(context.Background(), "Mumbai", 10)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, 10, results[0].PriorityScore)
	assert.Equal(t, 9, results[1].PriorityScore)
	assert.Equal(t, 1, results[2].PriorityScore)
}

func TestDeepSearch_TagsStrategyAndMerges(t *testing.T) {
	provider := &fakeProvider{hits: searchHits}
	engine := newTestEngine(t, provider, nil)

	results, err := engine.DeepSearch(context.Background(), "Mumbai", 20)
	require.NoError(t, err)

	// The same hits come back from every strategy; the first strategy
	// claims both distinct names.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "Industry Directories", r.DiscoveryStrategy)
	}
}

func TestSearchAllCities_CoversEveryCity(t *testing.T) {
	tierPath := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(tierPath, []byte("tier_1:\n  - Mumbai\ntier_2:\n  - Jaipur\n"), 0644))

	provider := &fakeProvider{hits: []models.SearchHit{
		{URL: "https://localsports.in/", Title: "Local Sports Traders"},
	}}

	config := common.NewDefaultConfig()
	config.Enrichment.BatchDelay = "1ms"
	config.Enrichment.CompanyDelay = "1ms"
	logger := arbor.NewLogger()
	limiter := crawler.NewRateLimiter(1000, 1000)
	crawlerService := crawler.NewService(&fakeFetcher{}, limiter, config, logger)
	cityService := cities.NewService(tierPath, logger)
	engine := NewService(provider, crawlerService, cityService, limiter, config, logger)

	results, err := engine.SearchAllCities(context.Background(), 5)
	require.NoError(t, err)

	citiesSeen := make(map[string]bool)
	for _, r := range results {
		citiesSeen[r.City] = true
	}
	assert.True(t, citiesSeen["Mumbai"])
	assert.True(t, citiesSeen["Jaipur"])
}

func TestGetCuratedCompanies_ReturnsCopy(t *testing.T) {
	engine := newTestEngine(t, &fakeProvider{}, nil)

	companies := engine.GetCuratedCompanies()
	require.NotEmpty(t, companies)
	original := companies[0].Name
	companies[0].Name = "mutated"

	assert.Equal(t, original, engine.GetCuratedCompanies()[0].Name)
}

func TestDiscoverFromCuratedList_EmailSortsFirst(t *testing.T) {
	// Meerut has three curated companies; give only Metco an email and
	// only Vinex a phone.
	engine := newTestEngine(t, &fakeProvider{}, map[string]string{
		"https://www.metcosportsindia.com": `<html><body><p>Email: sales@metcosportsindia.com</p></body></html>`,
		"https://www.vinex.in":             `<html><body><p>Call 9876543210</p></body></html>`,
	})

	results, err := engine.DiscoverFromCuratedList(context.Background(), "Meerut")
	require.NoError(t, err)

	require.Len(t, results, 4)
	assert.Equal(t, "Metco Sports India", results[0].Name)
	assert.Equal(t, "Vinex Enterprises", results[1].Name)
}
