package model

import "encoding/json"

// TripCommand is one mutation request against a trip. Name selects the
// handler; Properties carries the handler-specific payload.
type TripCommand struct {
	CommandID  string          `json:"command_id,omitempty"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

type MutationRequest struct {
	Commands []TripCommand `json:"commands"`
}
