// Package extract pulls structured contact details out of arbitrary page
// text and HTML with noise-tolerant heuristics. Extraction is pure: no
// network access, no mutation, and malformed input never panics. Absent
// fields are empty strings.
package extract

import "regexp"

// patternRule is one entry of an ordered pattern family. Rules are tried
// in order and the first candidate surviving the family's validator wins.
// group selects the submatch carrying the candidate (0 = whole match).
type patternRule struct {
	re    *regexp.Regexp
	group int
}

var emailRules = []patternRule{
	{re: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{re: regexp.MustCompile(`[\w.\-]+\s*@\s*[\w.\-]+\.\w+`)},
	{re: regexp.MustCompile(`(?i)[\w.\-]+\s*\[at\]\s*[\w.\-]+\.\w+`)},
}

// emailDenyList filters obvious placeholder and platform addresses. Matched
// as substrings of the lowercased normalized candidate.
var emailDenyList = []string{
	"example", "test", "noreply", "no-reply", "admin@",
	"support@", "info@example", "email@", "your@", "name@",
	"sentry.io", "wixpress", "google.com", "facebook.com",
}

// mailtoRule extracts the address from a mailto: link target.
var mailtoRule = regexp.MustCompile(`(?i)mailto:([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)

// Phone families are India-specific. Go's RE2 has no lookarounds, so the
// bare-digit families anchor on non-digit context and capture the number.
var phoneRules = []patternRule{
	{re: regexp.MustCompile(`\+91[\s.\-]*\d{5}[\s.\-]*\d{5}`)},
	{re: regexp.MustCompile(`\+91[\s.\-]*\d{10}`)},
	{re: regexp.MustCompile(`\b91[\s.\-]*\d{10}`)},
	{re: regexp.MustCompile(`\b0\d{2,4}[\s.\-]*\d{6,8}\b`)},
	{re: regexp.MustCompile(`(?:^|[^0-9])([789]\d{9})(?:[^0-9]|$)`), group: 1},
	{re: regexp.MustCompile(`(?:^|[^0-9])(\d{10})(?:[^0-9]|$)`), group: 1},
}

// telRule extracts the number from a tel: link target.
var telRule = regexp.MustCompile(`(?i)tel:\+?(\d[\d\s.\-]{8,15})`)

var whatsappRules = []patternRule{
	{re: regexp.MustCompile(`(?i)whatsapp[\s:]*\+?[\d\s.\-]{10,15}`)},
	{re: regexp.MustCompile(`(?i)\bwa[\s:]+\+?[\d\s.\-]{10,15}`)},
	{re: regexp.MustCompile(`(?i)wa\.me/(\d{10,15})`), group: 1},
	{re: regexp.MustCompile(`(?i)api\.whatsapp\.com/send\?phone=(\d{10,15})`), group: 1},
}

// Label-anchored fallbacks used when no address-like HTML container exists.
var addressRules = []patternRule{
	{re: regexp.MustCompile(`(?i)(?:address|office|location)[\s:]+([^,\n]{20,200}(?:india|pin|zip|\d{6}))`), group: 1},
	{re: regexp.MustCompile(`(?i)(?:corporate office|head office|registered office)[\s:]+([^,\n]{20,200})`), group: 1},
	{re: regexp.MustCompile(`(?i)(\d+[,/]?\s*[\w\s,]+(?:road|street|nagar|colony|area|sector|phase|block)[\w\s,]*(?:india|\d{6}))`), group: 1},
}

// addressContainerClass matches class/id values of address-like containers.
var addressContainerClass = regexp.MustCompile(`(?i)address|location|office`)

// addressCues are locality markers an address-like container must contain.
var addressCues = []string{"india", "road", "street", "nagar", "pin", "zip"}

// findFirst returns the first submatch selected by the rule, or "".
func (r patternRule) findFirst(text string) string {
	m := r.re.FindStringSubmatch(text)
	if m == nil || r.group >= len(m) {
		return ""
	}
	return m[r.group]
}

// findAll returns every submatch selected by the rule.
func (r patternRule) findAll(text string) []string {
	matches := r.re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if r.group < len(m) {
			out = append(out, m[r.group])
		}
	}
	return out
}
