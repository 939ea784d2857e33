// Package pricing computes itemized insurance quotes. Compute is a pure
// function of the trip snapshot and selected tier; the only external reads
// are the static catalog and the pluggable destination risk source.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"flightcool/internal/catalog"
	"flightcool/internal/model"
)

// ErrNotComputable means the trip/tier state does not yet support a quote.
// It is a normal condition, not a fault: callers show a prompt, not an error.
var ErrNotComputable = errors.New("quote not computable")

// RiskFunc resolves a destination code to a risk multiplier. It must return
// 1.0 for codes it cannot resolve.
type RiskFunc func(code string) float64

type Engine struct {
	risk RiskFunc
}

// New returns an engine using the given risk source, or the static catalog
// table when risk is nil.
func New(risk RiskFunc) *Engine {
	if risk == nil {
		risk = catalog.RiskLevel
	}
	return &Engine{risk: risk}
}

// Compute prices the trip at the given tier. An unknown tier is a
// configuration fault and surfaces as catalog.ErrUnknownTier; every other
// failure is ErrNotComputable.
func (e *Engine) Compute(trip model.Trip, tier model.CoverageTier) (*model.QuoteResult, error) {
	cov, err := catalog.Coverage(tier)
	if err != nil {
		return nil, err
	}

	n := len(trip.Travelers)
	if n == 0 {
		return nil, fmt.Errorf("%w: no travelers", ErrNotComputable)
	}

	days := TripDurationDays(trip.DepartureDate, trip.ReturnDate)
	if days <= 0 {
		return nil, fmt.Errorf("%w: trip duration is not positive", ErrNotComputable)
	}

	ageMult := AgeMultiplier(trip.Travelers)
	destMult := e.risk(trip.DestinationCode)
	durMult := DurationMultiplier(days)

	baseTotal := cov.BasePrice * float64(n)
	withAge := baseTotal * ageMult
	withDestination := withAge * destMult
	withDuration := withDestination * durMult
	total := roundCents(withDuration)

	plural := ""
	if n > 1 {
		plural = "s"
	}

	return &model.QuoteResult{
		Tier:                   tier,
		BasePrice:              cov.BasePrice,
		AgeMultiplier:          ageMult,
		DestinationMultiplier:  destMult,
		TripDurationMultiplier: durMult,
		TotalPrice:             total,
		PricePerTraveler:       roundCents(total / float64(n)),
		Breakdown: []model.BreakdownItem{
			{Label: fmt.Sprintf("Base price (%d traveler%s)", n, plural), Amount: roundCents(baseTotal)},
			{Label: "Age adjustment", Amount: roundCents(withAge - baseTotal)},
			{Label: "Destination risk", Amount: roundCents(withDestination - withAge)},
			{Label: fmt.Sprintf("Trip duration (%d days)", days), Amount: roundCents(withDuration - withDestination)},
		},
	}, nil
}

// TripDurationDays returns the whole-day duration between the two dates, or 0
// when either is unset or malformed. The difference is taken as an absolute
// value, so a return date before departure still yields a positive duration.
func TripDurationDays(departure, returnDate string) int {
	start, ok := model.ParseDate(departure)
	if !ok {
		return 0
	}
	end, ok := model.ParseDate(returnDate)
	if !ok {
		return 0
	}
	hours := math.Abs(end.Sub(start).Hours())
	return int(math.Ceil(hours / 24))
}

// AgeMultiplier is the arithmetic mean of the per-traveler age factors.
// Ages are applied as given; range validation is a quote-validity concern
// handled by the orchestrator.
func AgeMultiplier(travelers []model.Traveler) float64 {
	if len(travelers) == 0 {
		return 1.0
	}
	var sum float64
	for _, t := range travelers {
		sum += ageFactor(t.Age)
	}
	return sum / float64(len(travelers))
}

func ageFactor(age int) float64 {
	switch {
	case age < 18:
		return 0.8
	case age <= 35:
		return 1.0
	case age <= 50:
		return 1.2
	case age <= 65:
		return 1.5
	default:
		return 2.0
	}
}

// DurationMultiplier is a non-decreasing step function of trip length.
func DurationMultiplier(days int) float64 {
	switch {
	case days <= 3:
		return 0.8
	case days <= 7:
		return 1.0
	case days <= 14:
		return 1.3
	case days <= 30:
		return 1.6
	default:
		return 2.0
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
