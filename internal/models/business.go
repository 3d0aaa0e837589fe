package models

import (
	"fmt"
	"strings"
	"time"
)

// Tier is the coarse city-importance bucket used for downstream prioritization.
type Tier string

const (
	TierOne   Tier = "tier_1"
	TierTwo   Tier = "tier_2"
	TierThree Tier = "tier_3"
)

// MaxBusinessNameLength caps a cleaned display name.
const MaxBusinessNameLength = 100

// MinBusinessNameLength is the shortest name accepted by record constructors.
const MinBusinessNameLength = 3

// BusinessRecord is a discovered or enriched lead. Contact fields are
// optional and omitted (empty string) when extraction found nothing; they
// are only ever set, never cleared, by enrichment.
type BusinessRecord struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	City              string    `json:"city"`
	Tier              Tier      `json:"tier"`
	Type              string    `json:"type"`
	Website           string    `json:"website"`
	Description       string    `json:"description,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	WhatsApp          string    `json:"whatsapp,omitempty"`
	Address           string    `json:"address,omitempty"`
	Source            string    `json:"source"`
	PriorityScore     int       `json:"priority_score"`
	SearchQuery       string    `json:"search_query,omitempty"`
	DiscoveryStrategy string    `json:"discovery_strategy,omitempty"`
	Enriched          bool      `json:"enriched"`
	PagesScraped      []string  `json:"pages_scraped,omitempty"`
	SocialLinks       []string  `json:"social_links,omitempty"`
	DiscoveredAt      time.Time `json:"discovered_at"`
}

// Validate checks the constructor invariants for a business record.
func (b *BusinessRecord) Validate() error {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return fmt.Errorf("business name is required")
	}
	if len(name) < MinBusinessNameLength {
		return fmt.Errorf("business name too short: %q", name)
	}
	if len(name) > MaxBusinessNameLength {
		return fmt.Errorf("business name exceeds %d characters", MaxBusinessNameLength)
	}
	if b.Website == "" {
		return fmt.Errorf("website is required")
	}
	return nil
}

// HasContact reports whether the record carries at least one direct
// contact channel.
func (b *BusinessRecord) HasContact() bool {
	return b.Email != "" || b.Phone != ""
}

// ContactInfo holds the optional contact fields pulled from a page or
// snippet. A zero value means nothing was found.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}

// IsEmpty reports whether no field was extracted.
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.WhatsApp == "" && c.Address == ""
}

// ScrapeResult is the output of crawling one URL. PagesScraped is ordered
// with the seed URL first. Success is true iff an email or phone was found.
type ScrapeResult struct {
	URL          string   `json:"url"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	WhatsApp     string   `json:"whatsapp,omitempty"`
	Address      string   `json:"address,omitempty"`
	SocialLinks  []string `json:"social_links,omitempty"`
	PagesScraped []string `json:"pages_scraped,omitempty"`
	Success      bool     `json:"success"`
	Error        string   `json:"error,omitempty"`
}

// SearchHit is a single result from the external search provider.
type SearchHit struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// FetchResult is the raw outcome of one page fetch.
type FetchResult struct {
	StatusCode int
	Body       string
}

// CuratedCompany is one entry of the hand-maintained table of known
// companies used as a high-confidence discovery source.
type CuratedCompany struct {
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	City           string   `json:"city"`
	Website        string   `json:"website"`
	AdditionalURLs []string `json:"additional_urls,omitempty"`
}

// CityInfo pairs a configured city with its tier.
type CityInfo struct {
	Name string `json:"name"`
	Tier Tier   `json:"tier"`
}
