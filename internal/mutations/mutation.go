package mutations

import "flightcool/internal/model"

// Handler defines the contract for all trip mutation implementations.
// Validate reports business-rule messages without touching the trip; Apply
// returns a new snapshot and must leave the input untouched. Warnings never
// block a mutation; only CRITICAL messages do.
type Handler interface {
	Validate(trip model.Trip, cmd *model.TripCommand) []model.Message
	Apply(trip model.Trip, cmd *model.TripCommand) model.Trip
}
