package mutations

import (
	"github.com/google/uuid"

	"flightcool/internal/model"
)

type AddTravelerHandler struct{}

func (h *AddTravelerHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	return nil
}

func (h *AddTravelerHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	next := trip.Clone()
	next.Travelers = append(next.Travelers, model.Traveler{
		TravelerID: uuid.NewString(),
		Age:        model.DefaultTravelerAge,
	})
	return next
}
