package registration

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/events"
	"github.com/jorgebm/padel-partidos/internal/metrics"
)

// New creates a new registration Service.
func New(store Store, reminders ReminderScheduler, publisher events.Publisher, metrics metrics.Metrics) *Service {
	return &Service{
		store:     store,
		reminders: reminders,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Register adds the player to the roster of the match, falling back to
// the waitlist when the roster is full. A player can hold at most one
// slot per match.
func (s *Service) Register(ctx context.Context, matchID, playerID string, dryRun bool) (*club.Match, error) {
	match, err := s.store.FetchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.IsRegistered(playerID) {
		return nil, fmt.Errorf("%w: %s in match %s", club.ErrAlreadyRegistered, playerID, matchID)
	}

	switch {
	case len(match.Roster) < club.MatchCapacity:
		match.Roster = append(match.Roster, playerID)
	case len(match.Waitlist) < club.MatchCapacity:
		match.Waitlist = append(match.Waitlist, playerID)
	default:
		s.metrics.IncMatchFull()
		return nil, fmt.Errorf("%w: %s", club.ErrMatchFull, matchID)
	}

	if dryRun {
		log.Info("[Dry Run] Would register player", "matchID", matchID, "playerID", playerID)
		return match, nil
	}

	if err := s.store.Save(ctx, match); err != nil {
		return nil, err
	}

	// A registration consumes a freed slot, so any reminder still pending
	// for this match is stale.
	if err := s.reminders.CancelForMatch(matchID); err != nil {
		log.Error("Failed to cancel reminders after registration", "matchID", matchID, "error", err)
	}

	s.publish(events.EventPlayerRegistered, match, playerID)
	s.metrics.IncRegistrations()
	log.Info("Player registered", "matchID", matchID, "playerID", playerID,
		"roster", len(match.Roster), "waitlist", len(match.Waitlist))
	return match, nil
}

// Cancel removes every occurrence of the player from the roster and the
// waitlist of the match. Cancelling a player who is not registered
// succeeds without changing the match, so repeated cancels are
// idempotent. Freed roster slots are never backfilled from the waitlist
// automatically; waitlisted players get a staggered reminder instead.
func (s *Service) Cancel(ctx context.Context, matchID, playerID string, dryRun bool) (*club.Match, error) {
	match, err := s.store.FetchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	match.Roster = remove(match.Roster, playerID)
	match.Waitlist = remove(match.Waitlist, playerID)

	if dryRun {
		log.Info("[Dry Run] Would cancel registration", "matchID", matchID, "playerID", playerID)
		return match, nil
	}

	if err := s.store.Save(ctx, match); err != nil {
		return nil, err
	}

	if err := s.reminders.ScheduleForMatch(match); err != nil {
		log.Error("Failed to schedule waitlist reminders", "matchID", matchID, "error", err)
	}

	s.publish(events.EventPlayerCancelled, match, playerID)
	s.metrics.IncCancellations()
	log.Info("Registration cancelled", "matchID", matchID, "playerID", playerID,
		"roster", len(match.Roster), "waitlist", len(match.Waitlist))
	return match, nil
}

func (s *Service) publish(topic events.EventType, match *club.Match, playerID string) {
	err := s.publisher.Publish(topic, events.PlayerEvent{
		MatchID:  match.ID,
		PlayerID: playerID,
		Roster:   len(match.Roster),
		Waitlist: len(match.Waitlist),
	})
	if err != nil {
		// Fire-and-forget: downstream consumers miss one event.
		log.Error("Failed to publish event", "topic", topic, "matchID", match.ID, "error", err)
	}
}

// remove filters every occurrence of the player, preserving order.
func remove(players []string, playerID string) []string {
	filtered := players[:0]
	for _, p := range players {
		if p != playerID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
