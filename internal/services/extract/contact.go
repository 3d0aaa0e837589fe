package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/reperio/internal/models"
)

var (
	separatorStrip = regexp.MustCompile(`[\s.\-]`)
	nonDigit       = regexp.MustCompile(`\D`)
	nonDialable    = regexp.MustCompile(`[^\d+]`)
	atNotation     = regexp.MustCompile(`(?i)\[at\]`)
)

// ContactInfo extracts email, phone and WhatsApp number from text, with
// HTML link fallbacks (mailto:, tel:, wa.me) when a parsed document is
// available. doc may be nil.
func ContactInfo(text string, doc *goquery.Document) models.ContactInfo {
	var contact models.ContactInfo

	contact.Email = email(text, doc)
	contact.Phone = phone(text, doc)

	if wa := whatsApp(text); wa != "" {
		contact.WhatsApp = wa
		// A WhatsApp number is still a dialable number.
		if contact.Phone == "" {
			contact.Phone = wa
		}
	}

	return contact
}

func email(text string, doc *goquery.Document) string {
	for _, rule := range emailRules {
		for _, candidate := range rule.findAll(text) {
			normalized := normalizeEmail(candidate)
			if normalized != "" && !emailDenied(normalized) {
				return normalized
			}
		}
	}

	// Fall back to mailto: link targets.
	if doc != nil {
		found := ""
		doc.Find(`a[href]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			m := mailtoRule.FindStringSubmatch(href)
			if m == nil {
				return true
			}
			candidate := normalizeEmail(m[1])
			if candidate != "" && !emailDenied(candidate) {
				found = candidate
				return false
			}
			return true
		})
		return found
	}

	return ""
}

func normalizeEmail(candidate string) string {
	candidate = atNotation.ReplaceAllString(candidate, "@")
	candidate = strings.ReplaceAll(candidate, " ", "")
	if !strings.Contains(candidate, "@") {
		return ""
	}
	return candidate
}

func emailDenied(email string) bool {
	lower := strings.ToLower(email)
	for _, deny := range emailDenyList {
		if strings.Contains(lower, deny) {
			return true
		}
	}
	return false
}

func phone(text string, doc *goquery.Document) string {
	for _, rule := range phoneRules {
		if candidate := rule.findFirst(text); candidate != "" {
			if normalized := normalizePhone(candidate); normalized != "" {
				return normalized
			}
		}
	}

	// Fall back to tel: link targets.
	if doc != nil {
		found := ""
		doc.Find(`a[href]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, _ := sel.Attr("href")
			m := telRule.FindStringSubmatch(href)
			if m == nil {
				return true
			}
			if normalized := normalizePhone(m[1]); normalized != "" {
				found = normalized
				return false
			}
			return true
		})
		return found
	}

	return ""
}

// normalizePhone strips separators and formats a valid candidate as
// +91XXXXXXXXXX. Candidates outside 10-13 digits are rejected.
func normalizePhone(candidate string) string {
	phone := separatorStrip.ReplaceAllString(candidate, "")
	digits := nonDigit.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 13 {
		return ""
	}
	if !strings.HasPrefix(phone, "+") {
		switch {
		case strings.HasPrefix(phone, "91") && len(digits) == 12:
			phone = "+" + phone
		case len(digits) == 10:
			phone = "+91" + digits
		}
	}
	return phone
}

func whatsApp(text string) string {
	for _, rule := range whatsappRules {
		candidate := rule.findFirst(text)
		if candidate == "" {
			continue
		}
		number := nonDialable.ReplaceAllString(candidate, "")
		digits := nonDigit.ReplaceAllString(number, "")
		if len(digits) < 10 {
			continue
		}
		if strings.HasPrefix(number, "+") {
			return number
		}
		return "+91" + digits[len(digits)-10:]
	}
	return ""
}
