package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/extract"
)

// ScrapeWebsiteContacts fetches a URL and extracts contact details from it.
// With followContactPages set, same-domain contact/about/dealer links are
// visited (bounded) to fill fields still missing on the aggregate result.
// Failures on secondary pages are swallowed. Success is true iff the
// aggregate has an email or a phone.
func (s *Service) ScrapeWebsiteContacts(ctx context.Context, targetURL string, followContactPages bool) *models.ScrapeResult {
	result := &models.ScrapeResult{URL: targetURL}

	if targetURL == "" {
		result.Error = "empty url"
		return result
	}

	doc, errMsg := s.fetchDocument(ctx, targetURL)
	if errMsg != "" {
		result.Error = errMsg
		return result
	}

	text := documentText(doc)
	result.PagesScraped = append(result.PagesScraped, targetURL)

	contact := extract.ContactInfo(text, doc)
	result.Email = contact.Email
	result.Phone = contact.Phone
	result.WhatsApp = contact.WhatsApp
	result.Address = extract.Address(text, doc)
	result.SocialLinks = extract.SocialLinks(doc)

	if followContactPages {
		pages := s.findContactPages(doc, targetURL)
		if len(pages) > s.maxContactPages {
			pages = pages[:s.maxContactPages]
		}
		for _, pageURL := range pages {
			if containsString(result.PagesScraped, pageURL) {
				continue
			}
			s.scrapeSecondary(ctx, pageURL, result)
		}
	}

	result.Success = result.Email != "" || result.Phone != ""

	s.logger.Debug().
		Str("url", targetURL).
		Int("pages", len(result.PagesScraped)).
		Bool("success", result.Success).
		Msg("Scraped website contacts")

	return result
}

// scrapeSecondary visits one contact page and fills only fields still
// missing on the aggregate. Any failure leaves the aggregate untouched.
func (s *Service) scrapeSecondary(ctx context.Context, pageURL string, result *models.ScrapeResult) {
	doc, errMsg := s.fetchDocument(ctx, pageURL)
	if errMsg != "" {
		s.logger.Debug().Str("url", pageURL).Str("error", errMsg).Msg("Skipping contact page")
		return
	}

	text := documentText(doc)
	result.PagesScraped = append(result.PagesScraped, pageURL)

	contact := extract.ContactInfo(text, doc)
	if result.Email == "" {
		result.Email = contact.Email
	}
	if result.Phone == "" {
		result.Phone = contact.Phone
	}
	if result.WhatsApp == "" {
		result.WhatsApp = contact.WhatsApp
	}
	if result.Address == "" {
		result.Address = extract.Address(text, doc)
	}
}

// FetchContactDetails fetches a single page and extracts contact fields
// from it, without following links. Used for the shallow enrichment of top
// discovery results. Errors yield an empty ContactInfo.
func (s *Service) FetchContactDetails(ctx context.Context, targetURL string) models.ContactInfo {
	doc, errMsg := s.fetchDocument(ctx, targetURL)
	if errMsg != "" {
		s.logger.Debug().Str("url", targetURL).Str("error", errMsg).Msg("Page details fetch failed")
		return models.ContactInfo{}
	}

	text := documentText(doc)
	contact := extract.ContactInfo(text, doc)
	contact.Address = extract.Address(text, doc)
	return contact
}

// fetchDocument rate-limits, fetches and parses one page. The returned
// error string is empty on success.
func (s *Service) fetchDocument(ctx context.Context, targetURL string) (*goquery.Document, string) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err.Error()
	}

	fetched, err := s.fetcher.Get(ctx, targetURL)
	if err != nil {
		return nil, err.Error()
	}
	if fetched.StatusCode != 200 {
		return nil, httpError(fetched.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fetched.Body))
	if err != nil {
		return nil, err.Error()
	}
	return doc, ""
}

// findContactPages scans anchors for same-domain contact-indicating links,
// deduplicated in first-seen order.
func (s *Service) findContactPages(doc *goquery.Document, baseURL string) []string {
	parsedBase, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	pages := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		linkText := strings.ToLower(strings.TrimSpace(sel.Text()))
		if !containsContactKeyword(strings.ToLower(href), linkText) {
			return
		}

		parsedHref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := parsedBase.ResolveReference(parsedHref)
		if resolved.Host != parsedBase.Host {
			return
		}
		full := resolved.String()
		if !seen[full] {
			seen[full] = true
			pages = append(pages, full)
		}
	})

	return pages
}

// documentText renders the page as whitespace-separated plain text with
// script and style content removed.
func documentText(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	body.Find("script, style, noscript").Remove()

	var parts []string
	for _, node := range body.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
