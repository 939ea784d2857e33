package model

import "encoding/json"

// SessionState is the externally observable snapshot of a quote session.
// Quote is null whenever the current trip/tier state is not computable;
// Messages then explain what is missing.
type SessionState struct {
	SessionID        string       `json:"session_id"`
	Trip             Trip         `json:"trip"`
	SelectedTier     CoverageTier `json:"selected_tier"`
	TripDurationDays int          `json:"trip_duration_days"`
	Quote            *QuoteResult `json:"quote"`
	SubmissionState  string       `json:"submission_state"`
	FormValid        bool         `json:"form_valid"`
	Messages         []Message    `json:"messages"`
}

type ProcessedCommand struct {
	Command        TripCommand `json:"command"`
	Applied        bool        `json:"applied"`
	MessageIndexes []int       `json:"message_indexes,omitempty"`
}

type MutationMetadata struct {
	MutationBatchID string `json:"mutation_batch_id"`
	SessionID       string `json:"session_id"`
	ProcessedAt     string `json:"processed_at"`
	DurationMs      int64  `json:"duration_ms"`
	Outcome         string `json:"outcome"`
}

type MutationResponse struct {
	Metadata  MutationMetadata   `json:"metadata"`
	Messages  []Message          `json:"messages"`
	Commands  []ProcessedCommand `json:"commands"`
	TripPatch json.RawMessage    `json:"trip_patch"`
	State     SessionState       `json:"state"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
