package mutations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"flightcool/internal/model"
)

type setTravelerAgeProps struct {
	TravelerID string `json:"traveler_id"`
	Age        int    `json:"age"`
}

type SetTravelerAgeHandler struct{}

func (h *SetTravelerAgeHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	var props setTravelerAgeProps
	json.Unmarshal(cmd.Properties, &props)

	var msgs []model.Message

	if trip.FindTraveler(props.TravelerID) < 0 {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    "TRAVELER_NOT_FOUND",
			Message: fmt.Sprintf("No traveler with id %s; age not changed", props.TravelerID),
		})
		return msgs
	}

	// Out-of-range ages are stored as given; they gate quote validity, not
	// the mutation.
	if props.Age < 1 || props.Age > 100 {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    "AGE_OUT_OF_RANGE",
			Message: fmt.Sprintf("Age %d is outside 1-100; the quote stays non-computable until corrected", props.Age),
		})
	}

	return msgs
}

func (h *SetTravelerAgeHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	var props setTravelerAgeProps
	json.Unmarshal(cmd.Properties, &props)

	next := trip.Clone()
	if idx := next.FindTraveler(props.TravelerID); idx >= 0 {
		next.Travelers[idx].Age = props.Age
	}
	return next
}
