package registration

import (
	"context"

	"github.com/jorgebm/padel-partidos/internal/club"
)

// Store defines the match operations required by the registration service.
type Store interface {
	FetchByID(ctx context.Context, id string) (*club.Match, error)
	Save(ctx context.Context, match *club.Match) error
}

// ReminderScheduler defines the reminder operations required by the
// registration service.
type ReminderScheduler interface {
	ScheduleForMatch(match *club.Match) error
	CancelForMatch(matchID string) error
}
