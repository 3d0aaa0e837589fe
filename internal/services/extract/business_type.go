package extract

import "strings"

// typeFamily is one keyword family mapping content words to a business
// type label. Families are checked in order; the first match wins.
type typeFamily struct {
	label    string
	keywords []string
}

var typeFamilies = []typeFamily{
	{"Manufacturer", []string{"manufacturer", "manufacturing", "factory", "produce", "maker"}},
	{"Distributor", []string{"distributor", "distribution", "channel partner"}},
	{"Importer", []string{"importer", "importing", "import"}},
	{"Exporter", []string{"exporter", "export"}},
	{"Wholesaler", []string{"wholesale", "wholesaler", "bulk supplier", "bulk order"}},
	{"Retailer", []string{"retail", "retailer", "shop", "store", "showroom"}},
	{"Dealer", []string{"dealer", "dealership", "authorized dealer"}},
	{"Supplier", []string{"supplier", "supply", "vendor"}},
	{"Trader", []string{"trader", "trading company", "trading firm"}},
	{"Academy", []string{"academy", "training", "coaching", "club"}},
}

// BusinessTypeUnknown is returned when no keyword family matches.
const BusinessTypeUnknown = "Unknown"

// BusinessType infers a business-type label from page or snippet content.
func BusinessType(text string) string {
	lower := strings.ToLower(text)
	for _, family := range typeFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(lower, kw) {
				return family.label
			}
		}
	}
	return BusinessTypeUnknown
}
