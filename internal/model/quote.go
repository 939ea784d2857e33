package model

type BreakdownItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuoteResult is the itemized premium for a trip and coverage tier. It is
// derived state: recomputed wholesale after every trip or tier change and
// never partially updated.
type QuoteResult struct {
	Tier                   CoverageTier    `json:"tier"`
	BasePrice              float64         `json:"base_price"`
	AgeMultiplier          float64         `json:"age_multiplier"`
	DestinationMultiplier  float64         `json:"destination_multiplier"`
	TripDurationMultiplier float64         `json:"trip_duration_multiplier"`
	TotalPrice             float64         `json:"total_price"`
	PricePerTraveler       float64         `json:"price_per_traveler"`
	Breakdown              []BreakdownItem `json:"breakdown"`
}
