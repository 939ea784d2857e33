package mutations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"flightcool/internal/model"
)

type removeTravelerProps struct {
	TravelerID string `json:"traveler_id"`
}

type RemoveTravelerHandler struct{}

func (h *RemoveTravelerHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	var props removeTravelerProps
	json.Unmarshal(cmd.Properties, &props)

	idx := trip.FindTraveler(props.TravelerID)
	if idx < 0 {
		return []model.Message{{
			Level:   model.LevelWarning,
			Code:    "TRAVELER_NOT_FOUND",
			Message: fmt.Sprintf("No traveler with id %s; nothing removed", props.TravelerID),
		}}
	}

	if len(trip.Travelers) == 1 {
		return []model.Message{{
			Level:   model.LevelWarning,
			Code:    "NO_TRAVELERS",
			Message: "Removing the last traveler; the quote will not be computable until one is added",
		}}
	}
	return nil
}

func (h *RemoveTravelerHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	var props removeTravelerProps
	json.Unmarshal(cmd.Properties, &props)

	next := trip.Clone()
	idx := next.FindTraveler(props.TravelerID)
	if idx < 0 {
		return next
	}
	next.Travelers = append(next.Travelers[:idx], next.Travelers[idx+1:]...)
	return next
}
