package discovery

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/extract"
)

// maxDescriptionLength caps the snippet stored on a record.
const maxDescriptionLength = 400

// searchWithTemplates executes query templates against the search provider
// for a city, stopping once maxResults records are collected. Hits are
// ranked by URL priority before assembly, and duplicates (by URL or by
// case-insensitive cleaned name) are dropped within the call. A provider
// error on one template is logged and skipped; it never aborts the call.
func (s *Service) searchWithTemplates(ctx context.Context, templates []string, city string, maxResults int) []models.BusinessRecord {
	results := make([]models.BusinessRecord, 0, maxResults)
	seenURLs := make(map[string]bool)
	seenNames := make(map[string]bool)

	for _, template := range templates {
		if len(results) >= maxResults {
			break
		}

		query := renderTemplate(template, city)

		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Search aborted while rate limited")
			break
		}

		hits, err := s.provider.Search(ctx, query, s.region, s.hitsPerQuery)
		if err != nil {
			s.logger.Warn().Err(err).Str("query", query).Msg("Search query failed, skipping template")
			continue
		}

		// Most trustworthy sources first.
		sort.SliceStable(hits, func(i, j int) bool {
			return Priority(hits[i].URL) > Priority(hits[j].URL)
		})

		for _, hit := range hits {
			if len(results) >= maxResults {
				break
			}
			if hit.URL == "" || seenURLs[hit.URL] {
				continue
			}
			if !IsEligible(hit.URL) {
				continue
			}

			name := extract.CleanBusinessName(hit.Title)
			if len(name) < models.MinBusinessNameLength {
				continue
			}
			nameKey := strings.ToLower(name)
			if seenNames[nameKey] {
				continue
			}

			seenURLs[hit.URL] = true
			seenNames[nameKey] = true

			contact := extract.ContactInfo(hit.Snippet, nil)

			record := s.newRecord(name, city, extract.BusinessType(hit.Snippet+" "+hit.Title), hit.URL, SourceFor(hit.URL), Priority(hit.URL))
			record.Email = contact.Email
			record.Phone = contact.Phone
			record.WhatsApp = contact.WhatsApp
			record.SearchQuery = query
			if hit.Snippet != "" {
				record.Description = hit.Snippet
				if len(record.Description) > maxDescriptionLength {
					record.Description = record.Description[:maxDescriptionLength]
				}
			}

			results = append(results, record)
		}
	}

	return results
}

// DiscoverBusinesses runs the default multi-strategy sweep: industry
// directories, advanced search, manufacturer lists and related sports
// shops, in that order, merged by case-insensitive name. The merged set is
// sorted by priority score (stable, so ties keep discovery order), capped
// at limit, and the top 5 records get a shallow single-page enrichment.
func (s *Service) DiscoverBusinesses(ctx context.Context, city string, limit int) ([]models.BusinessRecord, error) {
	perStrategy := limit / 3
	if perStrategy < 3 {
		perStrategy = 3
	}

	sweeps := []struct {
		strategy Strategy
		take     int
		cap      int
	}{
		{strategyByID("directories"), 6, perStrategy},
		{strategyByID("google"), 4, perStrategy},
		{strategyByID("manufacturers"), 3, perStrategy / 2},
		{strategyByID("sports_shops"), 3, perStrategy / 2},
	}

	merged := make([]models.BusinessRecord, 0, limit)
	seenNames := make(map[string]bool)

	for _, sweep := range sweeps {
		s.logger.Info().
			Str("strategy", sweep.strategy.Name).
			Str("city", city).
			Msg("Running discovery strategy")

		templates := sweep.strategy.Templates
		if len(templates) > sweep.take {
			templates = templates[:sweep.take]
		}

		for _, r := range s.searchWithTemplates(ctx, templates, city, sweep.cap) {
			nameKey := strings.ToLower(r.Name)
			if seenNames[nameKey] {
				continue
			}
			seenNames[nameKey] = true
			merged = append(merged, r)
		}
	}

	sortByPriority(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	s.enrichTopShallow(ctx, merged, 5)

	s.logger.Info().Int("count", len(merged)).Str("city", city).Msg("Discovery complete")

	return merged, nil
}

// DiscoverByStrategy runs a single named strategy. "curated" routes to the
// curated list; unknown IDs fall back to directories.
func (s *Service) DiscoverByStrategy(ctx context.Context, city string, strategy string, limit int) ([]models.BusinessRecord, error) {
	if strategy == StrategyCurated {
		return s.DiscoverFromCuratedList(ctx, city)
	}
	return s.searchWithTemplates(ctx, strategyByID(strategy).Templates, city, limit), nil
}

// DeepSearch runs every strategy for maximum coverage, merging by name
// while recording which strategy found each record. The merged set is
// priority-sorted, capped at limit, and the top 10 get a shallow
// single-page enrichment.
func (s *Service) DeepSearch(ctx context.Context, city string, limit int) ([]models.BusinessRecord, error) {
	perStrategy := limit / len(strategies)
	if perStrategy < 3 {
		perStrategy = 3
	}

	merged := make([]models.BusinessRecord, 0, limit)
	seenNames := make(map[string]bool)

	for _, strategy := range strategies {
		s.logger.Info().Str("strategy", strategy.Name).Str("city", city).Msg("Deep search strategy")

		results := s.searchWithTemplates(ctx, strategy.Templates, city, perStrategy)

		for _, r := range results {
			nameKey := strings.ToLower(r.Name)
			if seenNames[nameKey] {
				continue
			}
			seenNames[nameKey] = true
			r.DiscoveryStrategy = strategy.Name
			merged = append(merged, r)
		}

		s.logger.Info().
			Int("found", len(results)).
			Int("unique_total", len(merged)).
			Str("strategy", strategy.Name).
			Msg("Deep search strategy done")
	}

	sortByPriority(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	s.enrichTopShallow(ctx, merged, 10)

	return merged, nil
}

// SearchAllCities runs the default sweep for every configured city with a
// courtesy pause in between.
func (s *Service) SearchAllCities(ctx context.Context, limitPerCity int) ([]models.BusinessRecord, error) {
	all := make([]models.BusinessRecord, 0)

	cityList := s.cities.GetAllCities()
	for i, info := range cityList {
		s.logger.Info().Str("city", info.Name).Str("tier", string(info.Tier)).Msg("Searching city")

		results, err := s.DiscoverBusinesses(ctx, info.Name, limitPerCity)
		if err != nil {
			s.logger.Warn().Err(err).Str("city", info.Name).Msg("City discovery failed, continuing")
			continue
		}
		all = append(all, results...)

		if i < len(cityList)-1 {
			select {
			case <-ctx.Done():
				return all, nil
			case <-time.After(s.companyDelay):
			}
		}
	}

	return all, nil
}

// enrichTopShallow fetches each of the top n record websites once (no
// contact-page following) and fills only missing contact fields.
func (s *Service) enrichTopShallow(ctx context.Context, records []models.BusinessRecord, n int) {
	if len(records) == 0 {
		return
	}
	if n > len(records) {
		n = len(records)
	}

	s.logger.Info().Int("count", n).Msg("Fetching contact details for top results")

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return
		}
		// FetchContactDetails draws from the shared rate limiter itself.
		details := s.crawler.FetchContactDetails(ctx, records[i].Website)
		if details.Email != "" && records[i].Email == "" {
			records[i].Email = details.Email
		}
		if details.Phone != "" && records[i].Phone == "" {
			records[i].Phone = details.Phone
		}
		if details.WhatsApp != "" && records[i].WhatsApp == "" {
			records[i].WhatsApp = details.WhatsApp
		}
		if details.Address != "" && records[i].Address == "" {
			records[i].Address = details.Address
		}
	}
}

// sortByPriority orders records by priority score descending, stable so
// ties keep discovery order.
func sortByPriority(records []models.BusinessRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PriorityScore > records[j].PriorityScore
	})
}
