package mutations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"flightcool/internal/model"
)

type setDateProps struct {
	Date string `json:"date"`
}

// Date mutations replace the field unconditionally: a malformed date or a
// return date before departure is stored with a warning and only affects
// downstream computability, never the mutation itself.

type SetDepartureDateHandler struct{}

func (h *SetDepartureDateHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	var props setDateProps
	json.Unmarshal(cmd.Properties, &props)
	return validateDate(props.Date, props.Date, trip.ReturnDate)
}

func (h *SetDepartureDateHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	var props setDateProps
	json.Unmarshal(cmd.Properties, &props)

	next := trip.Clone()
	next.DepartureDate = props.Date
	return next
}

type SetReturnDateHandler struct{}

func (h *SetReturnDateHandler) Validate(trip model.Trip, cmd *model.TripCommand) []model.Message {
	var props setDateProps
	json.Unmarshal(cmd.Properties, &props)
	return validateDate(props.Date, trip.DepartureDate, props.Date)
}

func (h *SetReturnDateHandler) Apply(trip model.Trip, cmd *model.TripCommand) model.Trip {
	var props setDateProps
	json.Unmarshal(cmd.Properties, &props)

	next := trip.Clone()
	next.ReturnDate = props.Date
	return next
}

func validateDate(value, departure, returnDate string) []model.Message {
	var msgs []model.Message

	if value != "" {
		if _, ok := model.ParseDate(value); !ok {
			msgs = append(msgs, model.Message{
				Level:   model.LevelWarning,
				Code:    "INVALID_DATE",
				Message: fmt.Sprintf("Date %q is not a valid YYYY-MM-DD date", value),
			})
			return msgs
		}
	}

	dep, okDep := model.ParseDate(departure)
	ret, okRet := model.ParseDate(returnDate)
	if okDep && okRet && ret.Before(dep) {
		msgs = append(msgs, model.Message{
			Level:   model.LevelWarning,
			Code:    "RETURN_BEFORE_DEPARTURE",
			Message: "Return date is before departure; duration is taken as the absolute difference",
		})
	}

	return msgs
}
