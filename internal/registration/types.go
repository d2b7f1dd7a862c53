package registration

import (
	"github.com/jorgebm/padel-partidos/internal/events"
	"github.com/jorgebm/padel-partidos/internal/metrics"
)

// Service handles the roster/waitlist state transitions of a match.
type Service struct {
	store     Store
	reminders ReminderScheduler
	publisher events.Publisher
	metrics   metrics.Metrics
}
