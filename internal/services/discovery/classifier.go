package discovery

import (
	"net/url"
	"strings"
)

// priorityDomains maps trusted directory and trade-portal domains to their
// priority scores. Higher means a more reliable source of listings.
var priorityDomains = map[string]int{
	"indiamart.com":       10,
	"tradeindia.com":      10,
	"justdial.com":        9,
	"exportersindia.com":  9,
	"sulekha.com":         8,
	"yellowpages.co.in":   8,
	"go4worldbusiness.com": 7,
	"tradexcel.in":        7,
	"linkedin.com":        6,
	"alibaba.com":         6,
}

// skipDomains filters social networks, general news and encyclopedic sites
// that never carry a usable business listing. Marketplaces covered by a
// dedicated strategy are handled there, not here.
var skipDomains = []string{
	"youtube.com", "facebook.com", "twitter.com", "x.com",
	"instagram.com", "wikipedia.org", "pinterest.com",
	"news", "thehindu", "indiatimes", "ndtv", "india.com",
	"bbc.com", "cnn.com", "reuters", "bloomberg",
	"quora.com", "reddit.com", "medium.com",
}

// businessPathSegments indicate a listing page on an otherwise unknown host.
var businessPathSegments = []string{"/company/", "/supplier/", "/manufacturer/", "/dealer/"}

// The curated list outranks every search-derived source.
const curatedPriority = 15

// IsEligible rejects URLs hosted on skip-listed domains.
func IsEligible(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, domain := range skipDomains {
		if strings.Contains(lower, domain) {
			return false
		}
	}
	return true
}

// Priority scores a URL by source trustworthiness. Deterministic: the same
// URL always yields the same score.
func Priority(rawURL string) int {
	lower := strings.ToLower(rawURL)

	best := 0
	for domain, score := range priorityDomains {
		if strings.Contains(lower, domain) && score > best {
			best = score
		}
	}
	if best > 0 {
		return best
	}

	for _, segment := range businessPathSegments {
		if strings.Contains(lower, segment) {
			return 5
		}
	}

	return 1
}

// sourceNames maps recognizable host substrings to source tags, checked in
// order.
var sourceNames = []struct {
	hostPart string
	name     string
}{
	{"indiamart", "IndiaMART"},
	{"tradeindia", "TradeIndia"},
	{"justdial", "JustDial"},
	{"linkedin", "LinkedIn"},
	{"sulekha", "Sulekha"},
	{"yellowpages", "YellowPages"},
}

// SourceFor names the origin of a hit by its host, defaulting to
// "web_search".
func SourceFor(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "web_search"
	}
	host := strings.ToLower(parsed.Host)
	for _, s := range sourceNames {
		if strings.Contains(host, s.hostPart) {
			return s.name
		}
	}
	return "web_search"
}
