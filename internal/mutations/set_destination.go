package mutations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"flightcool/internal/catalog"
	"flightcool/internal/model"
)

type setDestinationProps struct {
	Code string `json:"code"`
}

type SetDestinationHandler struct{}

func (h *SetDestinationHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	var props setDestinationProps
	json.Unmarshal(cmd.Properties, &props)

	if props.Code == "" {
		return nil
	}
	if _, ok := catalog.Destination(props.Code); !ok {
		return []model.Message{{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_DESTINATION",
			Message: fmt.Sprintf("Destination %s has no risk data; multiplier defaults to 1.0", props.Code),
		}}
	}
	return nil
}

func (h *SetDestinationHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	var props setDestinationProps
	json.Unmarshal(cmd.Properties, &props)

	next := trip.Clone()
	next.DestinationCode = props.Code
	return next
}
