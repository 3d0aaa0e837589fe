package crawler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/reperio/internal/models"
)

// EnrichLead fills missing contact fields on a lead by crawling its
// website with contact-page following. Existing non-empty fields are
// preserved; a lead without a website is returned unchanged.
func (s *Service) EnrichLead(ctx context.Context, lead models.BusinessRecord) models.BusinessRecord {
	website := lead.Website
	if website == "" {
		return lead
	}
	if !strings.HasPrefix(website, "http") {
		website = "https://" + website
	}

	scraped := s.ScrapeWebsiteContacts(ctx, website, true)

	if scraped.Email != "" && lead.Email == "" {
		lead.Email = scraped.Email
	}
	if scraped.Phone != "" && lead.Phone == "" {
		lead.Phone = scraped.Phone
	}
	if scraped.WhatsApp != "" && lead.WhatsApp == "" {
		lead.WhatsApp = scraped.WhatsApp
	}
	if scraped.Address != "" && lead.Address == "" {
		lead.Address = scraped.Address
	}

	lead.Enriched = true
	lead.PagesScraped = scraped.PagesScraped

	return lead
}

// EnrichLeadsBatch enriches leads in sequential windows of maxConcurrent,
// pausing between windows. A panicking or failing member is returned
// unmodified; output order and length always match the input.
func (s *Service) EnrichLeadsBatch(ctx context.Context, leads []models.BusinessRecord, maxConcurrent int) []models.BusinessRecord {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}

	s.logger.Info().Int("leads", len(leads)).Int("window", maxConcurrent).Msg("Enriching leads batch")

	enriched := make([]models.BusinessRecord, len(leads))
	copy(enriched, leads)

	for start := 0; start < len(leads); start += maxConcurrent {
		end := start + maxConcurrent
		if end > len(leads) {
			end = len(leads)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						s.logger.Warn().
							Str("website", leads[idx].Website).
							Str("panic", strings.TrimSpace(strings.SplitN(panicString(r), "\n", 2)[0])).
							Msg("Enrichment panicked, keeping lead unmodified")
						enriched[idx] = leads[idx]
					}
				}()
				enriched[idx] = s.EnrichLead(ctx, leads[idx])
			}(i)
		}
		wg.Wait()

		s.logger.Info().Int("processed", end).Int("total", len(leads)).Msg("Enrichment batch complete")

		// Courtesy pause between windows.
		if end < len(leads) {
			select {
			case <-ctx.Done():
				return enriched
			case <-time.After(s.batchDelay):
			}
		}
	}

	success := 0
	for _, lead := range enriched {
		if lead.Enriched && lead.HasContact() {
			success++
		}
	}
	s.logger.Info().Int("with_contact", success).Int("total", len(leads)).Msg("Batch enrichment finished")

	return enriched
}

func panicString(r interface{}) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
