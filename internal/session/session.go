// Package session owns the authoritative trip state for one quote flow and
// the add-to-cart submission state machine. Every trip or tier change
// synchronously recomputes the quote; the stored QuoteResult is always the
// output of the pricing engine for the current snapshot, or nil when the
// state is not computable.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"flightcool/internal/catalog"
	"flightcool/internal/jsondiff"
	"flightcool/internal/model"
	"flightcool/internal/mutations"
	"flightcool/internal/pricing"
)

const (
	StateIdle       = "idle"
	StateSubmitting = "submitting"
	StateConfirmed  = "confirmed"
)

var (
	// ErrNotSubmittable rejects a submit while the quote is missing or the
	// trip form is incomplete.
	ErrNotSubmittable = errors.New("quote is not ready to submit")
	// ErrSubmissionInFlight rejects a submit while a previous one has not
	// cycled back to idle.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

type Session struct {
	mu    sync.Mutex
	id    string
	trip  model.Trip
	tier  model.CoverageTier
	quote *model.QuoteResult
	state string

	engine      *pricing.Engine
	settleDelay time.Duration
	resetDelay  time.Duration
}

// New creates a session with one default traveler and the standard tier
// preselected, mirroring a fresh quote form.
func New(engine *pricing.Engine, settleDelay, resetDelay time.Duration) *Session {
	s := &Session{
		id:          uuid.NewString(),
		tier:        model.TierStandard,
		state:       StateIdle,
		engine:      engine,
		settleDelay: settleDelay,
		resetDelay:  resetDelay,
	}
	s.trip = model.Trip{
		Travelers: []model.Traveler{{TravelerID: uuid.NewString(), Age: model.DefaultTravelerAge}},
	}
	s.recompute()
	return s
}

func (s *Session) ID() string { return s.id }

// ApplyResult reports the outcome of one mutation batch in the same shape the
// response envelope uses: a flat numbered message list plus per-command
// message indexes.
type ApplyResult struct {
	Outcome  string
	Messages []model.Message
	Commands []model.ProcessedCommand
	Patch    json.RawMessage
}

// Apply runs the commands in order against the current trip. Warnings are
// collected but never block; a CRITICAL message stops the batch and leaves
// the remaining commands unprocessed. The quote is recomputed once at the
// end, and Patch describes the whole-batch trip delta.
func (s *Session) Apply(cmds []model.TripCommand) ApplyResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.trip
	res := ApplyResult{Outcome: model.OutcomeSuccess}

	for _, cmd := range cmds {
		handler, ok := mutations.Get(cmd.Name)
		if !ok {
			msg := model.Message{
				ID:      len(res.Messages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_COMMAND",
				Message: fmt.Sprintf("Unknown trip command: %s", cmd.Name),
			}
			res.Messages = append(res.Messages, msg)
			res.Commands = append(res.Commands, model.ProcessedCommand{
				Command:        cmd,
				MessageIndexes: []int{msg.ID},
			})
			res.Outcome = model.OutcomeFailure
			break
		}

		var indexes []int
		critical := false
		for _, vm := range handler.Validate(s.trip, &cmd) {
			vm.ID = len(res.Messages)
			res.Messages = append(res.Messages, vm)
			indexes = append(indexes, vm.ID)
			if vm.Level == model.LevelCritical {
				critical = true
			}
		}

		if critical {
			res.Commands = append(res.Commands, model.ProcessedCommand{
				Command:        cmd,
				MessageIndexes: indexes,
			})
			res.Outcome = model.OutcomeFailure
			break
		}

		s.trip = handler.Apply(s.trip, &cmd)
		res.Commands = append(res.Commands, model.ProcessedCommand{
			Command:        cmd,
			Applied:        true,
			MessageIndexes: indexes,
		})
	}

	s.recompute()

	patch, err := jsondiff.Between(before, s.trip)
	if err != nil {
		patch = json.RawMessage("[]")
	}
	res.Patch = patch

	if res.Messages == nil {
		res.Messages = []model.Message{}
	}
	return res
}

// SelectTier switches the coverage tier and recomputes. Anything outside the
// closed tier enum is a configuration fault.
func (s *Session) SelectTier(tier model.CoverageTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownTier, tier)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tier = tier
	s.recompute()
	return nil
}

// Submit starts the simulated add-to-cart commit. Once started, the
// submission settles regardless of later trip changes: price may float, but
// a commitment already in flight proceeds.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrSubmissionInFlight
	}
	if s.quote == nil || !s.formValid() {
		return ErrNotSubmittable
	}

	s.state = StateSubmitting
	time.AfterFunc(s.settleDelay, s.settle)
	return nil
}

func (s *Session) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return
	}
	s.state = StateConfirmed
	time.AfterFunc(s.resetDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state == StateConfirmed {
			s.state = StateIdle
		}
	})
}

// State returns a consistent snapshot for external readers.
func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	var quote *model.QuoteResult
	if s.quote != nil {
		q := *s.quote
		quote = &q
	}

	return model.SessionState{
		SessionID:        s.id,
		Trip:             s.trip.Clone(),
		SelectedTier:     s.tier,
		TripDurationDays: pricing.TripDurationDays(s.trip.DepartureDate, s.trip.ReturnDate),
		Quote:            quote,
		SubmissionState:  s.state,
		FormValid:        s.formValid(),
		Messages:         s.validityMessages(),
	}
}

// recompute derives the quote from the current snapshot. Caller holds mu.
// The tier is always a catalog member here, so any engine error means the
// trip is not yet computable.
func (s *Session) recompute() {
	quote, err := s.engine.Compute(s.trip, s.tier)
	if err != nil {
		s.quote = nil
		return
	}
	s.quote = quote
}

// formValid is the submit gate: every field filled, ages in range, and a
// positive duration. Caller holds mu.
func (s *Session) formValid() bool {
	t := s.trip
	if t.DestinationCode == "" || t.DepartureDate == "" || t.ReturnDate == "" {
		return false
	}
	if len(t.Travelers) == 0 {
		return false
	}
	for _, tr := range t.Travelers {
		if tr.Age < 1 || tr.Age > 100 {
			return false
		}
	}
	return pricing.TripDurationDays(t.DepartureDate, t.ReturnDate) > 0
}

// validityMessages explains what keeps the form from being submittable, so
// the UI can show prompts instead of a price. Caller holds mu.
func (s *Session) validityMessages() []model.Message {
	msgs := []model.Message{}
	add := func(code, text string) {
		msgs = append(msgs, model.Message{
			ID:      len(msgs),
			Level:   model.LevelWarning,
			Code:    code,
			Message: text,
		})
	}

	t := s.trip
	if t.DestinationCode == "" {
		add("DESTINATION_REQUIRED", "Select a destination")
	}
	if t.DepartureDate == "" || t.ReturnDate == "" {
		add("DATES_REQUIRED", "Set both departure and return dates")
	} else if pricing.TripDurationDays(t.DepartureDate, t.ReturnDate) <= 0 {
		add("NO_DURATION", "Trip duration must be at least one day")
	}
	if len(t.Travelers) == 0 {
		add("NO_TRAVELERS", "Add at least one traveler")
	}
	for _, tr := range t.Travelers {
		if tr.Age < 1 || tr.Age > 100 {
			add("AGE_OUT_OF_RANGE", fmt.Sprintf("Traveler %s has age %d outside 1-100", tr.TravelerID, tr.Age))
		}
	}
	return msgs
}
