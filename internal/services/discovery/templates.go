// Package discovery expands a city and strategy into search queries,
// classifies and ranks the returned URLs, and assembles ranked business
// records, delegating page crawling to the crawler service.
package discovery

import "strings"

// cityPlaceholder is the substitution token query templates may carry.
const cityPlaceholder = "{city}"

// Strategy is a named group of query templates targeting one category of
// source.
type Strategy struct {
	ID        string
	Name      string
	Templates []string
}

// StrategyCurated is the special strategy ID routed to the curated list.
const StrategyCurated = "curated"

// Strategies targeting the sports-equipment trade in India, in fixed
// priority order. The directories set leads because trade portals yield
// the most reliable listings.
var strategies = []Strategy{
	{
		ID:   "directories",
		Name: "Industry Directories",
		Templates: []string{
			`site:indiamart.com "pickleball" {city}`,
			`site:indiamart.com "pickleball paddle" distributor`,
			`site:indiamart.com "pickleball" "wholesale"`,
			`site:indiamart.com "sports equipment" "pickleball" {city}`,
			`site:tradeindia.com "pickleball" {city}`,
			`site:tradeindia.com "pickleball" distributor India`,
			`site:tradeindia.com "sports equipment" wholesale {city}`,
			`site:justdial.com "pickleball" {city}`,
			`site:justdial.com "sports equipment" dealer {city}`,
			`site:exportersindia.com "pickleball"`,
			`site:exportersindia.com "sports goods" "distributor"`,
			`site:sulekha.com "sports equipment" {city}`,
			`site:sulekha.com "sports shop" {city}`,
			`site:go4worldbusiness.com "pickleball" India`,
			`site:tradexcel.in "sports equipment"`,
		},
	},
	{
		ID:   "manufacturers",
		Name: "Manufacturer Lists",
		Templates: []string{
			`"pickleball" "authorized distributor" India`,
			`"pickleball" "where to buy" India {city}`,
			`"pickleball" "dealer locator" India`,
			`"pickleball brand" "India partner"`,
			`USAPA pickleball distributor India`,
			`"pickleball" manufacturer "India office"`,
			`"HEAD pickleball" OR "Franklin pickleball" OR "Selkirk pickleball" distributor India`,
			`"pickleball" "official distributor" {city}`,
		},
	},
	{
		ID:   "tradeshows",
		Name: "Trade Shows",
		Templates: []string{
			`"sports expo" exhibitor list India {city}`,
			`"sporting goods fair" India exhibitors`,
			`"IISF" India sports fair exhibitor`,
			`"sports trade show" India 2024 2025 participants`,
			`"pickleball" "trade show" India exhibitor`,
			`sports equipment exhibition India exhibitor contact`,
		},
	},
	{
		ID:   "linkedin",
		Name: "LinkedIn",
		Templates: []string{
			`site:linkedin.com/in "pickleball" "distributor" India`,
			`site:linkedin.com/in "sports equipment" "sales" India {city}`,
			`site:linkedin.com/company "pickleball" India`,
			`site:linkedin.com "channel partner" "sports" India`,
			`"pickleball" "business development" India contact`,
		},
	},
	{
		ID:   "google",
		Name: "Google Advanced",
		Templates: []string{
			`intitle:distributor "pickleball" India`,
			`intitle:wholesale "pickleball" {city}`,
			`"pickleball" "wholesale" "contact" OR "mobile" India`,
			`"pickleball" "dealer" "phone" {city}`,
			`"pickleball equipment" supplier {city} contact email`,
			`"pickleball" "bulk order" India`,
			`inurl:contact "pickleball" India`,
			`"sports goods" "wholesale dealer" {city} contact`,
		},
	},
	{
		ID:   "yellowpages",
		Name: "Yellow Pages",
		Templates: []string{
			`site:yellowpages.co.in "sports" {city}`,
			`site:yellowpages.in "sports equipment" {city}`,
			`"chamber of commerce" "sports goods" {city}`,
			`MSME sports equipment {city} directory`,
			`"sports goods association" {city} members`,
		},
	},
	{
		ID:   "marketplaces",
		Name: "Marketplaces",
		Templates: []string{
			`site:amazon.in "pickleball" "sold by" contact`,
			`"amazon seller" "pickleball" India contact`,
			`"flipkart seller" "pickleball" contact`,
			`"pickleball" seller India wholesale bulk`,
			`decathlon pickleball supplier India`,
		},
	},
	{
		ID:   "sports_shops",
		Name: "Sports Shops",
		Templates: []string{
			`"tennis shop" "pickleball" {city}`,
			`"badminton shop" {city} contact`,
			`"sports academy" "pickleball" {city}`,
			`"pickleball club" {city} equipment supplier`,
			`"fitness center" "pickleball" {city}`,
			`"racket sports" shop {city} wholesale`,
		},
	},
}

// strategyByID looks up a strategy; unknown IDs fall back to directories.
func strategyByID(id string) Strategy {
	for _, s := range strategies {
		if s.ID == id {
			return s
		}
	}
	return strategies[0]
}

// renderTemplate substitutes the city placeholder when present.
func renderTemplate(template, city string) string {
	if strings.Contains(template, cityPlaceholder) {
		return strings.ReplaceAll(template, cityPlaceholder, city)
	}
	return template
}
