package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxAddressLength caps extracted postal addresses.
const maxAddressLength = 250

// Address finds a postal address in page text or HTML. HTML containers are
// preferred: an <address> element, then any div/span/p whose class or id
// looks address-like and whose text carries an India-locality cue. Text
// pattern fallbacks run last. Returns "" when nothing qualifies.
func Address(text string, doc *goquery.Document) string {
	if doc != nil {
		if addr := addressFromHTML(doc); addr != "" {
			return addr
		}
	}

	for _, rule := range addressRules {
		if m := rule.findFirst(text); m != "" {
			return truncate(strings.TrimSpace(m), maxAddressLength)
		}
	}

	return ""
}

func addressFromHTML(doc *goquery.Document) string {
	found := ""

	doc.Find("address").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		tagText := strings.TrimSpace(sel.Text())
		if len(tagText) > 20 && len(tagText) < 300 {
			found = truncate(tagText, maxAddressLength)
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	doc.Find("div, span, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		if !addressContainerClass.MatchString(class) && !addressContainerClass.MatchString(id) {
			return true
		}
		tagText := strings.TrimSpace(sel.Text())
		if len(tagText) <= 20 || len(tagText) >= 300 {
			return true
		}
		lower := strings.ToLower(tagText)
		for _, cue := range addressCues {
			if strings.Contains(lower, cue) {
				found = truncate(tagText, maxAddressLength)
				return false
			}
		}
		return true
	})

	return found
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
