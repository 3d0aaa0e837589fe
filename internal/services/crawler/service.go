// Package crawler visits lead websites and their contact pages to fill in
// missing contact fields. Fetch failures are recorded on the result, never
// propagated: the worst outcome of a crawl is an empty result.
package crawler

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// Service crawls websites for contact details and coordinates batch
// enrichment. The page fetcher and rate limiter are injected so sessions
// stay independent and tests can run without the network.
type Service struct {
	fetcher         interfaces.PageFetcher
	limiter         *RateLimiter
	logger          arbor.ILogger
	maxContactPages int
	batchDelay      time.Duration
}

// NewService creates a crawler service.
func NewService(fetcher interfaces.PageFetcher, limiter *RateLimiter, config *common.Config, logger arbor.ILogger) *Service {
	maxPages := config.Crawler.MaxContactPages
	if maxPages <= 0 {
		maxPages = 3
	}
	return &Service{
		fetcher:         fetcher,
		limiter:         limiter,
		logger:          logger,
		maxContactPages: maxPages,
		batchDelay:      config.BatchDelay(),
	}
}

// contactKeywords mark anchor hrefs or link texts pointing at pages likely
// to carry contact details.
var contactKeywords = []string{
	"contact", "about", "reach", "connect", "enquiry", "inquiry",
	"dealer", "distributor", "where-to-buy",
}

func containsContactKeyword(href, text string) bool {
	for _, kw := range contactKeywords {
		if strings.Contains(href, kw) || strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func httpError(statusCode int) string {
	return fmt.Sprintf("HTTP %d", statusCode)
}
