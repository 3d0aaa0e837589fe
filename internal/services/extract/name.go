package extract

import (
	"regexp"
	"strings"

	"github.com/ternarybob/reperio/internal/models"
)

// nameStripRules remove directory-site boilerplate, legal-entity suffixes
// and leading enumeration from search-result titles. Order matters: the
// separator rules run before suffix rules so "Foo Pvt Ltd - IndiaMART"
// loses the site tag first.
var nameStripRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*[-|–—].*$`),
	regexp.MustCompile(`(?i)\s*\|.*$`),
	regexp.MustCompile(`(?i)\s*::.*$`),
	regexp.MustCompile(`(?i)\s*-\s*IndiaMART.*$`),
	regexp.MustCompile(`(?i)\s*-\s*TradeIndia.*$`),
	regexp.MustCompile(`(?i)\s*-\s*JustDial.*$`),
	regexp.MustCompile(`(?i)\s*-\s*Sulekha.*$`),
	regexp.MustCompile(`(?i)\s*-\s*LinkedIn.*$`),
	regexp.MustCompile(`(?i)\s*,\s*\w+\s*$`),
	regexp.MustCompile(`(?i)\bPvt\.?\s*Ltd\.?\b`),
	regexp.MustCompile(`(?i)\bPrivate\s*Limited\b`),
	regexp.MustCompile(`(?i)\bLLP\b`),
	regexp.MustCompile(`(?i)\bInc\.?\b`),
	regexp.MustCompile(`(?i)\bLLC\b`),
	regexp.MustCompile(`^\d+\.\s*`),
}

// CleanBusinessName strips site boilerplate from a raw search-result title
// to produce a display name of at most 100 characters. Returns "" when
// nothing meaningful remains; callers must reject names under 3 characters.
func CleanBusinessName(title string) string {
	name := title
	for _, rule := range nameStripRules {
		name = rule.ReplaceAllString(name, "")
	}
	name = strings.TrimSpace(name)
	if len(name) > models.MaxBusinessNameLength {
		name = name[:models.MaxBusinessNameLength]
	}
	return name
}
