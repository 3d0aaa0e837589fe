package discovery

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ternarybob/reperio/internal/models"
)

// curatedCompanies is the hand-maintained table of known importers,
// manufacturers, dealers and distributors. Kept in source deliberately:
// entries change rarely and review happens through code review.
var curatedCompanies = []models.CuratedCompany{
	// JOOLA India and authorized dealers
	{
		Name:    "JOOLA India",
		Role:    "Manufacturer & Distributor",
		City:    "Bengaluru",
		Website: "https://joola.in",
		AdditionalURLs: []string{
			"https://joola.in/pages/authorized-distributors",
			"https://joola.in/pages/contact-us",
		},
	},
	{
		Name:           "Selection Centre Sports (SCS Sports)",
		Role:           "Dealer (JOOLA Authorized)",
		City:           "Mumbai",
		Website:        "https://scssports.in",
		AdditionalURLs: []string{"https://scssports.in/contact-us"},
	},
	{
		Name:           "Pickleball Outlet",
		Role:           "JOOLA Authorized Dealer",
		City:           "Hyderabad",
		Website:        "https://pickleballoutlet.in",
		AdditionalURLs: []string{"https://pickleballoutlet.in/contact"},
	},
	{
		Name:           "Cialfo Sports",
		Role:           "JOOLA Authorized Dealer",
		City:           "Chennai",
		Website:        "https://cialfosports.com",
		AdditionalURLs: []string{"https://cialfosports.com/contact"},
	},
	{
		Name:           "Sporfy Store",
		Role:           "JOOLA Authorized Dealer",
		City:           "Coimbatore",
		Website:        "https://sporfystore.com",
		AdditionalURLs: []string{"https://sporfystore.com/contact-us"},
	},
	{
		Name:           "Fyre Sports",
		Role:           "JOOLA Authorized Dealer",
		City:           "Jaipur",
		Website:        "https://fyresports.in",
		AdditionalURLs: []string{"https://fyresports.in/contact"},
	},
	{
		Name:           "Play IQ",
		Role:           "JOOLA Authorized Dealer",
		City:           "Bengaluru",
		Website:        "https://playiq.in",
		AdditionalURLs: []string{"https://playiq.in/contact"},
	},
	{
		Name:           "Lodhi Sports",
		Role:           "JOOLA Authorized Dealer",
		City:           "Delhi",
		Website:        "https://lodhisport.com",
		AdditionalURLs: []string{"https://lodhisport.com/contact-us"},
	},
	// Major manufacturers and suppliers
	{
		Name:    "Vinex Enterprises",
		Role:    "Manufacturer & Supplier",
		City:    "Meerut",
		Website: "https://www.vinex.in",
		AdditionalURLs: []string{
			"https://www.vinex.in/Pickleball-Equipment.html",
			"https://www.vinex.in/contact-us.html",
		},
	},
	{
		Name:    "Metco Sports India",
		Role:    "Manufacturer & Dealer",
		City:    "Meerut",
		Website: "https://www.metcosportsindia.com",
		AdditionalURLs: []string{
			"https://www.metcosportsindia.com/pickleball-pole-paddles-and-equipment.html",
			"https://www.metcosportsindia.com/contact-us.html",
		},
	},
	{
		Name:           "Strokess Sporting Solutions",
		Role:           "Manufacturer & Brand",
		City:           "Vadodara",
		Website:        "https://strokess.com",
		AdditionalURLs: []string{"https://strokess.com/contact"},
	},
	// Wholesalers and distributors
	{
		Name:    "Total Pickleball",
		Role:    "Wholesaler/Distributor",
		City:    "Jaipur",
		Website: "https://www.indiamart.com/total-pickleball",
		AdditionalURLs: []string{
			"https://www.indiamart.com/total-pickleball/fitness-equipments.html",
			"https://www.indiamart.com/total-pickleball/aboutus.html",
		},
	},
	// Sports equipment companies
	{
		Name:           "Cosco India",
		Role:           "Sports Equipment Manufacturer",
		City:           "Delhi",
		Website:        "https://www.cosco.in",
		AdditionalURLs: []string{"https://www.cosco.in/contact-us"},
	},
	{
		Name:           "Nivia Sports",
		Role:           "Sports Equipment Manufacturer",
		City:           "Jalandhar",
		Website:        "https://niviasports.com",
		AdditionalURLs: []string{"https://niviasports.com/contact-us"},
	},
	{
		Name:           "Vector X Sports",
		Role:           "Sports Equipment Manufacturer",
		City:           "Meerut",
		Website:        "https://vectorxsports.com",
		AdditionalURLs: []string{"https://vectorxsports.com/contact"},
	},
	// Online retailers with contact info
	{
		Name:           "Sports 365",
		Role:           "Online Retailer",
		City:           "Mumbai",
		Website:        "https://www.sports365.in",
		AdditionalURLs: []string{"https://www.sports365.in/contact-us"},
	},
	{
		Name:           "Racquet Point",
		Role:           "Racquet Sports Specialist",
		City:           "Delhi",
		Website:        "https://racquetpoint.in",
		AdditionalURLs: []string{"https://racquetpoint.in/contact"},
	},
	// Regional distributors
	{
		Name:           "Meerut Sports Industries Association",
		Role:           "Industry Association",
		City:           "Meerut",
		Website:        "https://www.meerutsports.com",
		AdditionalURLs: []string{"https://www.meerutsports.com/contact"},
	},
	{
		Name:           "Sports Wing",
		Role:           "Sports Equipment Dealer",
		City:           "Chennai",
		Website:        "https://sportswing.in",
		AdditionalURLs: []string{"https://sportswing.in/contact-us"},
	},
}

// GetCuratedCompanies returns the curated company table.
func (s *Service) GetCuratedCompanies() []models.CuratedCompany {
	companies := make([]models.CuratedCompany, len(curatedCompanies))
	copy(companies, curatedCompanies)
	return companies
}

// DiscoverFromCuratedList scrapes each curated company's website (with
// contact-page following) and its secondary URLs (without), assembling
// high-priority records. An optional city filters the table by exact
// case-insensitive match. Records with an email sort first, then records
// with a phone, stable within ties.
func (s *Service) DiscoverFromCuratedList(ctx context.Context, city string) ([]models.BusinessRecord, error) {
	companies := curatedCompanies
	if city != "" {
		filtered := make([]models.CuratedCompany, 0)
		for _, c := range companies {
			if strings.EqualFold(c.City, city) {
				filtered = append(filtered, c)
			}
		}
		companies = filtered
	}

	s.logger.Info().Int("companies", len(companies)).Str("city", city).Msg("Scraping curated company list")

	results := make([]models.BusinessRecord, 0, len(companies))

	for i, company := range companies {
		if ctx.Err() != nil {
			break
		}

		s.logger.Info().
			Int("index", i+1).
			Int("total", len(companies)).
			Str("name", company.Name).
			Msg("Scraping curated company")

		scraped := s.crawler.ScrapeWebsiteContacts(ctx, company.Website, true)

		for _, addURL := range company.AdditionalURLs {
			if containsString(scraped.PagesScraped, addURL) {
				continue
			}
			extra := s.crawler.ScrapeWebsiteContacts(ctx, addURL, false)
			if extra.Email != "" && scraped.Email == "" {
				scraped.Email = extra.Email
			}
			if extra.Phone != "" && scraped.Phone == "" {
				scraped.Phone = extra.Phone
			}
			if extra.WhatsApp != "" && scraped.WhatsApp == "" {
				scraped.WhatsApp = extra.WhatsApp
			}
			if extra.Address != "" && scraped.Address == "" {
				scraped.Address = extra.Address
			}
			scraped.PagesScraped = append(scraped.PagesScraped, extra.PagesScraped...)
		}

		record := s.newRecord(company.Name, company.City, company.Role, company.Website, "curated_list", curatedPriority)
		record.Email = scraped.Email
		record.Phone = scraped.Phone
		record.WhatsApp = scraped.WhatsApp
		record.Address = scraped.Address
		record.PagesScraped = scraped.PagesScraped
		record.SocialLinks = scraped.SocialLinks

		results = append(results, record)

		// Courtesy pause between companies.
		if i < len(companies)-1 {
			select {
			case <-ctx.Done():
				return sortCuratedResults(results), nil
			case <-time.After(s.companyDelay):
			}
		}
	}

	withContact := 0
	for _, r := range results {
		if r.HasContact() {
			withContact++
		}
	}
	s.logger.Info().Int("with_contact", withContact).Int("total", len(results)).Msg("Curated list scrape complete")

	return sortCuratedResults(results), nil
}

// sortCuratedResults puts records with an email first, then records with a
// phone, stable within ties.
func sortCuratedResults(results []models.BusinessRecord) []models.BusinessRecord {
	sort.SliceStable(results, func(i, j int) bool {
		ei, ej := results[i].Email != "", results[j].Email != ""
		if ei != ej {
			return ei
		}
		pi, pj := results[i].Phone != "", results[j].Phone != ""
		if pi != pj {
			return pi
		}
		return false
	})
	return results
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
