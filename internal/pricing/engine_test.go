package pricing

import (
	"errors"
	"math"
	"testing"

	"flightcool/internal/catalog"
	"flightcool/internal/model"
)

func validTrip() model.Trip {
	return model.Trip{
		DestinationCode: "EU",
		DepartureDate:   "2025-06-01",
		ReturnDate:      "2025-06-08",
		Travelers: []model.Traveler{
			{TravelerID: "t1", Age: 30},
			{TravelerID: "t2", Age: 70},
		},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestComputeWorkedExample(t *testing.T) {
	// standard tier, 2 travelers aged 30 and 70, EU, 7-day trip
	q, err := New(nil).Compute(validTrip(), model.TierStandard)
	if err != nil {
		t.Fatalf("expected quote, got error: %v", err)
	}

	if q.BasePrice != 59 {
		t.Fatalf("expected base price 59, got %v", q.BasePrice)
	}
	if q.AgeMultiplier != 1.5 {
		t.Fatalf("expected age multiplier 1.5, got %v", q.AgeMultiplier)
	}
	if q.DestinationMultiplier != 1.1 {
		t.Fatalf("expected destination multiplier 1.1, got %v", q.DestinationMultiplier)
	}
	if q.TripDurationMultiplier != 1.0 {
		t.Fatalf("expected duration multiplier 1.0, got %v", q.TripDurationMultiplier)
	}
	if !approx(q.TotalPrice, 194.70) {
		t.Fatalf("expected total 194.70, got %v", q.TotalPrice)
	}
	if !approx(q.PricePerTraveler, 97.35) {
		t.Fatalf("expected price per traveler 97.35, got %v", q.PricePerTraveler)
	}

	if len(q.Breakdown) != 4 {
		t.Fatalf("expected 4 breakdown items, got %d", len(q.Breakdown))
	}
	if q.Breakdown[0].Label != "Base price (2 travelers)" {
		t.Fatalf("unexpected base label: %s", q.Breakdown[0].Label)
	}
	if q.Breakdown[3].Label != "Trip duration (7 days)" {
		t.Fatalf("unexpected duration label: %s", q.Breakdown[3].Label)
	}
	if !approx(q.Breakdown[0].Amount, 118) {
		t.Fatalf("expected base total 118, got %v", q.Breakdown[0].Amount)
	}
}

func TestBreakdownSumsToTotal(t *testing.T) {
	trips := []model.Trip{
		validTrip(),
		{
			DestinationCode: "AFRICA",
			DepartureDate:   "2025-03-01",
			ReturnDate:      "2025-04-15",
			Travelers: []model.Traveler{
				{TravelerID: "a", Age: 12},
				{TravelerID: "b", Age: 44},
				{TravelerID: "c", Age: 67},
			},
		},
		{
			DestinationCode: "US",
			DepartureDate:   "2025-07-10",
			ReturnDate:      "2025-07-12",
			Travelers:       []model.Traveler{{TravelerID: "solo", Age: 55}},
		},
	}

	for _, tier := range []model.CoverageTier{model.TierBasic, model.TierStandard, model.TierPremium} {
		for _, trip := range trips {
			q, err := New(nil).Compute(trip, tier)
			if err != nil {
				t.Fatalf("tier %s: unexpected error: %v", tier, err)
			}
			var sum float64
			for _, item := range q.Breakdown {
				sum += item.Amount
			}
			if math.Abs(sum-q.TotalPrice) > 0.01 {
				t.Fatalf("tier %s: breakdown sums to %v, total is %v", tier, sum, q.TotalPrice)
			}
			perTraveler := q.PricePerTraveler * float64(len(trip.Travelers))
			if math.Abs(perTraveler-q.TotalPrice) > 0.01*float64(len(trip.Travelers)) {
				t.Fatalf("tier %s: per-traveler price %v does not reproduce total %v", tier, q.PricePerTraveler, q.TotalPrice)
			}
		}
	}
}

func TestTotalScalesLinearlyInTravelerCount(t *testing.T) {
	base := validTrip()
	base.Travelers = []model.Traveler{{TravelerID: "t1", Age: 30}}

	single, err := New(nil).Compute(base, model.TierStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for n := 2; n <= 5; n++ {
		trip := base.Clone()
		for i := 1; i < n; i++ {
			trip.Travelers = append(trip.Travelers, model.Traveler{TravelerID: "x", Age: 30})
		}
		q, err := New(nil).Compute(trip, model.TierStandard)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if q.AgeMultiplier != single.AgeMultiplier {
			t.Fatalf("n=%d: age multiplier changed with traveler count", n)
		}
		if math.Abs(q.TotalPrice-float64(n)*single.TotalPrice) > 0.01*float64(n) {
			t.Fatalf("n=%d: total %v is not %d x %v", n, q.TotalPrice, n, single.TotalPrice)
		}
	}
}

func TestAgeMultiplierBands(t *testing.T) {
	cases := []struct {
		age  int
		want float64
	}{
		{5, 0.8}, {17, 0.8},
		{18, 1.0}, {35, 1.0},
		{36, 1.2}, {50, 1.2},
		{51, 1.5}, {65, 1.5},
		{66, 2.0}, {90, 2.0},
	}
	for _, c := range cases {
		got := AgeMultiplier([]model.Traveler{{TravelerID: "t", Age: c.age}})
		if got != c.want {
			t.Fatalf("age %d: expected %v, got %v", c.age, c.want, got)
		}
	}

	// Crossing a band boundary strictly increases the multiplier.
	if AgeMultiplier([]model.Traveler{{Age: 36}}) <= AgeMultiplier([]model.Traveler{{Age: 35}}) {
		t.Fatal("expected multiplier to increase across the 35/36 boundary")
	}
}

func TestDurationMultiplierSteps(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{1, 0.8}, {3, 0.8},
		{4, 1.0}, {7, 1.0},
		{8, 1.3}, {14, 1.3},
		{15, 1.6}, {30, 1.6},
		{31, 2.0}, {120, 2.0},
	}
	prev := 0.0
	for _, c := range cases {
		got := DurationMultiplier(c.days)
		if got != c.want {
			t.Fatalf("%d days: expected %v, got %v", c.days, c.want, got)
		}
		if got < prev {
			t.Fatalf("%d days: multiplier decreased", c.days)
		}
		prev = got
	}
}

func TestTripDurationDays(t *testing.T) {
	if d := TripDurationDays("2025-06-01", "2025-06-08"); d != 7 {
		t.Fatalf("expected 7 days, got %d", d)
	}
	if d := TripDurationDays("2025-06-01", "2025-06-01"); d != 0 {
		t.Fatalf("same-day trip: expected 0, got %d", d)
	}
	// Reversed dates use the absolute difference.
	if d := TripDurationDays("2025-06-08", "2025-06-01"); d != 7 {
		t.Fatalf("reversed dates: expected 7, got %d", d)
	}
	if d := TripDurationDays("", "2025-06-08"); d != 0 {
		t.Fatalf("unset departure: expected 0, got %d", d)
	}
	if d := TripDurationDays("2025-06-01", "not-a-date"); d != 0 {
		t.Fatalf("malformed return: expected 0, got %d", d)
	}
}

func TestUnknownDestinationDefaultsToNeutral(t *testing.T) {
	trip := validTrip()
	trip.DestinationCode = "ATLANTIS"

	q, err := New(nil).Compute(trip, model.TierStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DestinationMultiplier != 1.0 {
		t.Fatalf("expected neutral multiplier 1.0, got %v", q.DestinationMultiplier)
	}
}

func TestNotComputable(t *testing.T) {
	trip := validTrip()
	trip.Travelers = nil
	if _, err := New(nil).Compute(trip, model.TierStandard); !errors.Is(err, ErrNotComputable) {
		t.Fatalf("no travelers: expected ErrNotComputable, got %v", err)
	}

	trip = validTrip()
	trip.ReturnDate = trip.DepartureDate
	if _, err := New(nil).Compute(trip, model.TierStandard); !errors.Is(err, ErrNotComputable) {
		t.Fatalf("zero duration: expected ErrNotComputable, got %v", err)
	}

	trip = validTrip()
	trip.DepartureDate = ""
	if _, err := New(nil).Compute(trip, model.TierStandard); !errors.Is(err, ErrNotComputable) {
		t.Fatalf("unset date: expected ErrNotComputable, got %v", err)
	}
}

func TestUnknownTierIsConfigurationFault(t *testing.T) {
	_, err := New(nil).Compute(validTrip(), model.CoverageTier("gold"))
	if !errors.Is(err, catalog.ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
	if errors.Is(err, ErrNotComputable) {
		t.Fatal("unknown tier must not be reported as NotComputable")
	}
}

func TestCustomRiskSource(t *testing.T) {
	engine := New(func(code string) float64 { return 2.5 })
	q, err := engine.Compute(validTrip(), model.TierBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DestinationMultiplier != 2.5 {
		t.Fatalf("expected injected multiplier 2.5, got %v", q.DestinationMultiplier)
	}
}
