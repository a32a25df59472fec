package mockdata

import "skyways/internal/models"

// PriceMatch tags how a base price table was resolved, in lookup priority
// order: exact route key, reverse-direction key with a flat markup, a
// region bucket keyed by known hub codes, then the generic default.
type PriceMatch string

const (
	MatchExactRoute    PriceMatch = "exact_route"
	MatchReverseRoute  PriceMatch = "reverse_route"
	MatchRegionDefault PriceMatch = "region_default"
	MatchGeneric       PriceMatch = "generic_default"
)

// Hardcoded per-route base fares, one table per direction where known.
var internationalRoutePrices = map[string]models.PriceByClass{
	// India to UAE
	"DEL-DXB": {Economy: 18500, Premium: 32500, Business: 58500, First: 95000},
	"BOM-DXB": {Economy: 16800, Premium: 29800, Business: 52800, First: 88000},
	"BLR-DXB": {Economy: 19200, Premium: 33500, Business: 59800, First: 96500},

	// India to Singapore
	"DEL-SIN": {Economy: 28500, Premium: 48500, Business: 85500, First: 145000},
	"BOM-SIN": {Economy: 26500, Premium: 45500, Business: 82500, First: 140000},
	"BLR-SIN": {Economy: 24500, Premium: 42500, Business: 78500, First: 135000},

	// India to UK
	"DEL-LHR": {Economy: 45500, Premium: 78500, Business: 135500, First: 225000},
	"BOM-LHR": {Economy: 47000, Premium: 80000, Business: 138000, First: 228000},

	// India to USA
	"DEL-JFK": {Economy: 65000, Premium: 110000, Business: 185000, First: 295000},
	"BOM-JFK": {Economy: 67000, Premium: 112000, Business: 187000, First: 297000},

	// India to Europe
	"DEL-CDG": {Economy: 42000, Premium: 72000, Business: 125000, First: 205000},
	"DEL-FRA": {Economy: 43000, Premium: 73000, Business: 126000, First: 206000},

	// India to Asia
	"DEL-NRT": {Economy: 35000, Premium: 60000, Business: 105000, First: 175000},
	"DEL-BKK": {Economy: 22000, Premium: 38000, Business: 68000, First: 115000},
	"DEL-KUL": {Economy: 24000, Premium: 41000, Business: 72000, First: 125000},
	"DEL-ICN": {Economy: 32000, Premium: 55000, Business: 95000, First: 160000},
	"DEL-HKG": {Economy: 30000, Premium: 52000, Business: 90000, First: 155000},

	// India to Australia
	"DEL-SYD": {Economy: 55000, Premium: 95000, Business: 165000, First: 275000},
	"BOM-SYD": {Economy: 57000, Premium: 97000, Business: 167000, First: 277000},
}

var domesticRoutePrices = map[string]models.PriceByClass{
	"DEL-BOM": {Economy: 4500, Premium: 7500, Business: 12500, First: 18500},
	"BOM-DEL": {Economy: 4800, Premium: 7800, Business: 12800, First: 18800},
	"DEL-BLR": {Economy: 5200, Premium: 8200, Business: 13800, First: 19800},
	"BLR-DEL": {Economy: 5400, Premium: 8400, Business: 14000, First: 20000},
	"BOM-GOI": {Economy: 3200, Premium: 5500, Business: 9200, First: 14200},
	"GOI-BOM": {Economy: 3400, Premium: 5700, Business: 9400, First: 14400},
}

// Region buckets keyed by hub codes, matched against either endpoint.
var regionPrices = []struct {
	hubs   []string
	prices models.PriceByClass
}{
	{[]string{"DXB"}, models.PriceByClass{Economy: 18000, Premium: 32000, Business: 58000, First: 95000}},
	{[]string{"SIN", "BKK", "KUL", "HKG"}, models.PriceByClass{Economy: 25000, Premium: 43000, Business: 78000, First: 135000}},
	{[]string{"LHR", "CDG", "FRA"}, models.PriceByClass{Economy: 44000, Premium: 75000, Business: 130000, First: 215000}},
	{[]string{"JFK"}, models.PriceByClass{Economy: 65000, Premium: 110000, Business: 185000, First: 295000}},
}

var (
	defaultInternationalPrices = models.PriceByClass{Economy: 30000, Premium: 50000, Business: 85000, First: 150000}
	defaultDomesticPrices      = models.PriceByClass{Economy: 4000, Premium: 6500, Business: 11000, First: 16500}
)

// ResolveBasePrices resolves the base fare table for a route, trying the
// exact route key, then the reverse direction with a flat markup, then a
// region bucket, then the international or domestic default. The returned
// PriceMatch reports which tier answered.
func ResolveBasePrices(originCode, destinationCode string, international bool) (models.PriceByClass, PriceMatch) {
	table := domesticRoutePrices
	if international {
		table = internationalRoutePrices
	}

	routeKey := originCode + "-" + destinationCode
	if prices, ok := table[routeKey]; ok {
		return prices, MatchExactRoute
	}

	reverseKey := destinationCode + "-" + originCode
	if prices, ok := table[reverseKey]; ok {
		return models.PriceByClass{
			Economy:  prices.Economy + 500,
			Premium:  prices.Premium + 1000,
			Business: prices.Business + 2000,
			First:    prices.First + 3000,
		}, MatchReverseRoute
	}

	if international {
		for _, region := range regionPrices {
			for _, hub := range region.hubs {
				if hub == originCode || hub == destinationCode {
					return region.prices, MatchRegionDefault
				}
			}
		}
		return defaultInternationalPrices, MatchGeneric
	}

	return defaultDomesticPrices, MatchGeneric
}
