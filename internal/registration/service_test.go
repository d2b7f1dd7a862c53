package registration_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/events"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/registration"
	"github.com/jorgebm/padel-partidos/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyScheduler records reminder scheduling without arming real jobs.
type spyScheduler struct {
	mu             sync.Mutex
	ScheduledCalls []*club.Match
	CancelledCalls []string
}

func (s *spyScheduler) ScheduleForMatch(match *club.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ScheduledCalls = append(s.ScheduledCalls, match)
	return nil
}

func (s *spyScheduler) CancelForMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CancelledCalls = append(s.CancelledCalls, matchID)
	return nil
}

func setupService(t *testing.T, rows [][]string) (*registration.Service, club.MatchStore, *spyScheduler, *events.MockPublisher, *metrics.Mock) {
	t.Helper()
	fake := sheet.NewFake()
	fake.Seed("Partidos", rows)
	store := club.NewMatchStore(fake)
	scheduler := &spyScheduler{}
	publisher := events.NewMock()
	metricsSvc := metrics.NewMock()
	svc := registration.New(store, scheduler, publisher, metricsSvc)
	return svc, store, scheduler, publisher, metricsSvc
}

func matchRow(id string, roster, waitlist []string) []string {
	row := make([]string, 13)
	row[0] = id
	row[1] = "Club Norte"
	row[2] = "19:00"
	row[3] = "2026-09-05"
	row[4] = "90"
	copy(row[5:9], roster)
	copy(row[9:13], waitlist)
	return row
}

func TestRegister_AppendsToRoster(t *testing.T) {
	svc, store, _, publisher, metricsSvc := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B", "C"}, nil),
	})

	match, err := svc.Register(context.Background(), "P1", "D", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, match.Roster)
	assert.Empty(t, match.Waitlist)

	reloaded, err := store.FetchByID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, reloaded.Roster)

	assert.Equal(t, 1, metricsSvc.Registrations())
	published := publisher.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventPlayerRegistered, published[0].Topic)
}

func TestRegister_FullRosterGoesToWaitlist(t *testing.T) {
	svc, _, _, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B", "C", "D"}, []string{"E"}),
	})

	match, err := svc.Register(context.Background(), "P1", "F", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, match.Roster)
	assert.Equal(t, []string{"E", "F"}, match.Waitlist)
}

func TestRegister_MatchFull(t *testing.T) {
	svc, store, _, publisher, metricsSvc := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B", "C", "D"}, []string{"E", "F", "G", "H"}),
	})

	_, err := svc.Register(context.Background(), "P1", "X", false)
	assert.ErrorIs(t, err, club.ErrMatchFull)

	// The match must be unchanged.
	reloaded, err := store.FetchByID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, reloaded.Roster)
	assert.Equal(t, []string{"E", "F", "G", "H"}, reloaded.Waitlist)

	assert.Equal(t, 1, metricsSvc.MatchFull())
	assert.Equal(t, 0, metricsSvc.Registrations())
	assert.Empty(t, publisher.Published())
}

func TestRegister_MatchNotFound(t *testing.T) {
	svc, _, _, _, _ := setupService(t, nil)

	_, err := svc.Register(context.Background(), "nope", "A", false)
	assert.ErrorIs(t, err, club.ErrMatchNotFound)
}

func TestRegister_DuplicatePlayerRejected(t *testing.T) {
	svc, _, _, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A"}, nil),
		matchRow("P2", []string{"B", "C", "D", "E"}, []string{"F"}),
	})

	_, err := svc.Register(context.Background(), "P1", "A", false)
	assert.ErrorIs(t, err, club.ErrAlreadyRegistered)

	// Waitlisted players hold a slot too.
	_, err = svc.Register(context.Background(), "P2", "F", false)
	assert.ErrorIs(t, err, club.ErrAlreadyRegistered)
}

func TestRegister_CancelsStaleReminders(t *testing.T) {
	svc, _, scheduler, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A"}, nil),
	})

	_, err := svc.Register(context.Background(), "P1", "B", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1"}, scheduler.CancelledCalls)
	assert.Empty(t, scheduler.ScheduledCalls)
}

func TestRegister_DryRun(t *testing.T) {
	svc, store, scheduler, publisher, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A"}, nil),
	})

	match, err := svc.Register(context.Background(), "P1", "B", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, match.Roster)

	reloaded, err := store.FetchByID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, reloaded.Roster, "a dry run must not persist")
	assert.Empty(t, scheduler.CancelledCalls)
	assert.Empty(t, publisher.Published())
}

func TestCancel_RemovesFromRoster(t *testing.T) {
	svc, store, scheduler, publisher, metricsSvc := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B"}, nil),
	})

	match, err := svc.Cancel(context.Background(), "P1", "B", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, match.Roster)

	reloaded, err := store.FetchByID(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, reloaded.Roster)

	require.Len(t, scheduler.ScheduledCalls, 1)
	assert.Equal(t, 1, metricsSvc.Cancellations())
	published := publisher.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventPlayerCancelled, published[0].Topic)
}

func TestCancel_RemovesFromBothLists(t *testing.T) {
	// A legacy row where the same player holds a roster and a waitlist slot.
	svc, _, _, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B"}, []string{"B"}),
	})

	match, err := svc.Cancel(context.Background(), "P1", "B", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, match.Roster)
	assert.Empty(t, match.Waitlist)
}

func TestCancel_Idempotent(t *testing.T) {
	svc, _, _, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B"}, nil),
	})

	first, err := svc.Cancel(context.Background(), "P1", "B", false)
	require.NoError(t, err)

	// Cancelling again succeeds and never mutates further.
	second, err := svc.Cancel(context.Background(), "P1", "B", false)
	require.NoError(t, err)
	assert.Equal(t, first.Roster, second.Roster)
	assert.Equal(t, first.Waitlist, second.Waitlist)
}

func TestCancel_MatchNotFound(t *testing.T) {
	svc, _, _, _, _ := setupService(t, nil)

	_, err := svc.Cancel(context.Background(), "nope", "A", false)
	assert.ErrorIs(t, err, club.ErrMatchNotFound)
}

func TestCancel_NoAutomaticPromotion(t *testing.T) {
	svc, _, _, _, _ := setupService(t, [][]string{
		matchRow("P1", []string{"A", "B", "C", "D"}, []string{"E"}),
	})

	match, err := svc.Cancel(context.Background(), "P1", "A", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, match.Roster)
	assert.Equal(t, []string{"E"}, match.Waitlist, "waitlisted players are reminded, never promoted automatically")
}
