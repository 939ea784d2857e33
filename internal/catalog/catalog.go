// Package catalog holds the static coverage and destination tables. Both are
// process-wide constants: loaded once, never mutated.
package catalog

import (
	"errors"
	"fmt"

	"flightcool/internal/model"
)

// ErrUnknownTier signals a configuration fault: the tier enum is closed, so a
// miss here is a programming error rather than a user error.
var ErrUnknownTier = errors.New("unknown coverage tier")

var coverages = []model.CoverageOption{
	{
		Tier:        model.TierBasic,
		Name:        "Basic",
		Description: "Essential coverage for budget-conscious travelers",
		BasePrice:   29,
		ColorTag:    "slate",
		Features: []model.CoverageFeature{
			{Name: "Trip Cancellation", Included: true, Limit: "$1,000"},
			{Name: "Medical Emergency", Included: true, Limit: "$10,000"},
			{Name: "Baggage Loss", Included: true, Limit: "$500"},
			{Name: "Flight Delay", Included: true, Limit: "$100"},
			{Name: "Emergency Evacuation", Included: false},
			{Name: "24/7 Assistance", Included: false},
			{Name: "Adventure Sports", Included: false},
			{Name: "Cancel for Any Reason", Included: false},
		},
	},
	{
		Tier:        model.TierStandard,
		Name:        "Standard",
		Description: "Comprehensive protection for most trips",
		BasePrice:   59,
		ColorTag:    "blue",
		Popular:     true,
		Features: []model.CoverageFeature{
			{Name: "Trip Cancellation", Included: true, Limit: "$5,000"},
			{Name: "Medical Emergency", Included: true, Limit: "$50,000"},
			{Name: "Baggage Loss", Included: true, Limit: "$1,500"},
			{Name: "Flight Delay", Included: true, Limit: "$300"},
			{Name: "Emergency Evacuation", Included: true, Limit: "$100,000"},
			{Name: "24/7 Assistance", Included: true},
			{Name: "Adventure Sports", Included: false},
			{Name: "Cancel for Any Reason", Included: false},
		},
	},
	{
		Tier:        model.TierPremium,
		Name:        "Premium",
		Description: "Maximum protection with premium benefits",
		BasePrice:   99,
		ColorTag:    "purple",
		Features: []model.CoverageFeature{
			{Name: "Trip Cancellation", Included: true, Limit: "$10,000"},
			{Name: "Medical Emergency", Included: true, Limit: "$250,000"},
			{Name: "Baggage Loss", Included: true, Limit: "$3,000"},
			{Name: "Flight Delay", Included: true, Limit: "$500"},
			{Name: "Emergency Evacuation", Included: true, Limit: "$500,000"},
			{Name: "24/7 Assistance", Included: true},
			{Name: "Adventure Sports", Included: true},
			{Name: "Cancel for Any Reason", Included: true, Limit: "75% refund"},
		},
	},
}

var destinations = []model.Destination{
	{Code: "US", Name: "United States", RiskLevel: 1.0},
	{Code: "EU", Name: "Europe", RiskLevel: 1.1},
	{Code: "ASIA", Name: "Asia Pacific", RiskLevel: 1.2},
	{Code: "LATAM", Name: "Latin America", RiskLevel: 1.3},
	{Code: "AFRICA", Name: "Africa", RiskLevel: 1.4},
	{Code: "MIDDLE_EAST", Name: "Middle East", RiskLevel: 1.3},
	{Code: "OCEANIA", Name: "Australia / Oceania", RiskLevel: 1.1},
}

var (
	coverageByTier    = map[model.CoverageTier]*model.CoverageOption{}
	destinationByCode = map[string]*model.Destination{}
)

func init() {
	for i := range coverages {
		coverageByTier[coverages[i].Tier] = &coverages[i]
	}
	for i := range destinations {
		destinationByCode[destinations[i].Code] = &destinations[i]
	}
}

func Coverage(tier model.CoverageTier) (model.CoverageOption, error) {
	c, ok := coverageByTier[tier]
	if !ok {
		return model.CoverageOption{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return *c, nil
}

func Destination(code string) (model.Destination, bool) {
	d, ok := destinationByCode[code]
	if !ok {
		return model.Destination{}, false
	}
	return *d, true
}

// RiskLevel resolves a destination code to its risk multiplier. Unknown codes
// degrade to the neutral 1.0: missing risk data must never fail a quote.
func RiskLevel(code string) float64 {
	if d, ok := destinationByCode[code]; ok {
		return d.RiskLevel
	}
	return 1.0
}

func Coverages() []model.CoverageOption {
	out := make([]model.CoverageOption, len(coverages))
	copy(out, coverages)
	return out
}

func Destinations() []model.Destination {
	out := make([]model.Destination, len(destinations))
	copy(out, destinations)
	return out
}
