package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flightcool/internal/model"
	"flightcool/internal/pricing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(pricing.New(nil), 150*time.Millisecond, 150*time.Millisecond)
}

func cmd(name, props string) model.TripCommand {
	return model.TripCommand{Name: name, Properties: json.RawMessage(props)}
}

// fillTrip applies the mutations that make the default session submittable.
func fillTrip(t *testing.T, s *Session) {
	t.Helper()
	res := s.Apply([]model.TripCommand{
		cmd("set_destination", `{"code":"EU"}`),
		cmd("set_departure_date", `{"date":"2025-06-01"}`),
		cmd("set_return_date", `{"date":"2025-06-08"}`),
	})
	require.Equal(t, model.OutcomeSuccess, res.Outcome)
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t)
	state := s.State()

	require.Equal(t, model.TierStandard, state.SelectedTier)
	require.Equal(t, StateIdle, state.SubmissionState)
	require.Len(t, state.Trip.Travelers, 1)
	require.Equal(t, model.DefaultTravelerAge, state.Trip.Travelers[0].Age)
	require.NotEmpty(t, state.Trip.Travelers[0].TravelerID)

	// Nothing filled in yet: no quote, and prompts explaining why.
	require.Nil(t, state.Quote)
	require.False(t, state.FormValid)
	require.NotEmpty(t, state.Messages)
}

func TestRecomputeOnEveryChange(t *testing.T) {
	s := newTestSession(t)
	fillTrip(t, s)

	state := s.State()
	require.NotNil(t, state.Quote)
	require.True(t, state.FormValid)
	require.Equal(t, 7, state.TripDurationDays)
	// 1 traveler age 30, EU 1.1, 7 days: 59*1.0*1.1*1.0 = 64.90
	require.InDelta(t, 64.90, state.Quote.TotalPrice, 0.01)

	// Tier change recomputes synchronously.
	require.NoError(t, s.SelectTier(model.TierPremium))
	state = s.State()
	require.Equal(t, model.TierPremium, state.SelectedTier)
	require.InDelta(t, 108.90, state.Quote.TotalPrice, 0.01) // 99*1.1

	// A mutation that invalidates the trip drops the quote.
	s.Apply([]model.TripCommand{cmd("set_return_date", `{"date":"2025-06-01"}`)})
	state = s.State()
	require.Nil(t, state.Quote)
	require.False(t, state.FormValid)
}

func TestRemovingLastTravelerDropsQuote(t *testing.T) {
	s := newTestSession(t)
	fillTrip(t, s)

	id := s.State().Trip.Travelers[0].TravelerID
	s.Apply([]model.TripCommand{cmd("remove_traveler", `{"traveler_id":"` + id + `"}`)})

	state := s.State()
	require.Empty(t, state.Trip.Travelers)
	require.Nil(t, state.Quote)

	s.Apply([]model.TripCommand{cmd("add_traveler", `{}`)})
	require.NotNil(t, s.State().Quote)
}

func TestApplyBatchStopsOnUnknownCommand(t *testing.T) {
	s := newTestSession(t)
	res := s.Apply([]model.TripCommand{
		cmd("set_destination", `{"code":"EU"}`),
		cmd("teleport", `{}`),
		cmd("set_departure_date", `{"date":"2025-06-01"}`),
	})

	require.Equal(t, model.OutcomeFailure, res.Outcome)
	require.Len(t, res.Commands, 2) // third command never processed
	require.True(t, res.Commands[0].Applied)
	require.False(t, res.Commands[1].Applied)
	require.Equal(t, "UNKNOWN_COMMAND", res.Messages[res.Commands[1].MessageIndexes[0]].Code)

	// The first command still landed.
	require.Equal(t, "EU", s.State().Trip.DestinationCode)
	require.Empty(t, s.State().Trip.DepartureDate)
}

func TestApplyReturnsTripPatch(t *testing.T) {
	s := newTestSession(t)
	res := s.Apply([]model.TripCommand{cmd("set_destination", `{"code":"ASIA"}`)})

	var ops []map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Patch, &ops))
	require.NotEmpty(t, ops)

	found := false
	for _, op := range ops {
		if op["path"] == "/destination_code" {
			require.Equal(t, "replace", op["op"])
			require.Equal(t, "ASIA", op["value"])
			found = true
		}
	}
	require.True(t, found, "expected a patch op for /destination_code")
}

func TestSubmitGuards(t *testing.T) {
	s := newTestSession(t)

	// Incomplete form: not submittable.
	require.ErrorIs(t, s.Submit(), ErrNotSubmittable)

	fillTrip(t, s)
	require.NoError(t, s.Submit())

	// Re-entrancy guard: no second submission while one is in flight.
	require.ErrorIs(t, s.Submit(), ErrSubmissionInFlight)
	require.Equal(t, StateSubmitting, s.State().SubmissionState)
}

func TestSubmissionLifecycle(t *testing.T) {
	s := newTestSession(t)
	fillTrip(t, s)

	require.NoError(t, s.Submit())
	require.Equal(t, StateSubmitting, s.State().SubmissionState)

	require.Eventually(t, func() bool {
		return s.State().SubmissionState == StateConfirmed
	}, 3*time.Second, 10*time.Millisecond)

	// Confirmed still blocks a new submission.
	require.ErrorIs(t, s.Submit(), ErrSubmissionInFlight)

	require.Eventually(t, func() bool {
		return s.State().SubmissionState == StateIdle
	}, 3*time.Second, 10*time.Millisecond)

	// Back to idle: a new submission may start.
	require.NoError(t, s.Submit())
}

func TestInFlightSubmissionSurvivesTripChanges(t *testing.T) {
	s := newTestSession(t)
	fillTrip(t, s)

	require.NoError(t, s.Submit())

	// Invalidate the trip mid-flight; the commitment still settles.
	s.Apply([]model.TripCommand{cmd("set_return_date", `{"date":""}`)})
	require.Nil(t, s.State().Quote)

	require.Eventually(t, func() bool {
		return s.State().SubmissionState == StateConfirmed
	}, 3*time.Second, 10*time.Millisecond)
}

func TestSelectTierRejectsUnknown(t *testing.T) {
	s := newTestSession(t)
	require.Error(t, s.SelectTier(model.CoverageTier("gold")))
	require.Equal(t, model.TierStandard, s.State().SelectedTier)
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(pricing.New(nil), time.Millisecond, time.Millisecond)
	s := store.Create()

	got, ok := store.Get(s.ID())
	require.True(t, ok)
	require.Same(t, s, got)

	_, ok = store.Get("nope")
	require.False(t, ok)
}
