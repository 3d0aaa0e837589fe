package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialDomains are the networks worth recording on a lead.
var socialDomains = []string{
	"linkedin.com", "facebook.com", "twitter.com", "instagram.com", "youtube.com",
}

// maxSocialLinks caps the links recorded per page.
const maxSocialLinks = 5

// SocialLinks collects up to 5 unique social profile links from anchor
// targets, first-seen order.
func SocialLinks(doc *goquery.Document) []string {
	if doc == nil {
		return nil
	}

	seen := make(map[string]bool)
	links := make([]string, 0, maxSocialLinks)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if href == "" || seen[href] {
			return true
		}
		for _, domain := range socialDomains {
			if strings.Contains(href, domain) {
				seen[href] = true
				links = append(links, href)
				break
			}
		}
		return len(links) < maxSocialLinks
	})

	return links
}
