package reminder

import (
	"database/sql"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/notifier"
)

// Stagger is the delay between consecutive waitlist reminders: the k-th
// waitlisted player (0-indexed) is reminded after k * Stagger.
const Stagger = 30 * time.Minute

// Status represents the lifecycle of a reminder.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSent      Status = "SENT"
	StatusCancelled Status = "CANCELLED"
)

// Reminder is one scheduled waitlist notification, keyed by
// (match, player) and persisted so deadlines survive a restart.
type Reminder struct {
	ID        string
	MatchID   string
	PlayerID  string
	Position  int
	FireAt    time.Time
	Status    Status
	CreatedAt time.Time
}

// store persists reminders in the local database.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Scheduler arms one-shot jobs for pending reminders and cancels them
// when the match state changes.
type Scheduler struct {
	store    Store
	notifier notifier.Notifier
	metrics  metrics.Metrics
	sched    gocron.Scheduler
	now      func() time.Time

	mu   sync.Mutex
	jobs map[string]jobHandle // reminder ID -> scheduled job
}

type jobHandle struct {
	jobID   uuid.UUID
	matchID string
}
