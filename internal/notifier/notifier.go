package notifier

import "github.com/jorgebm/padel-partidos/internal/club"

// WaitlistReminder describes one reminder owed to a waitlisted player
// after a roster slot opened up.
type WaitlistReminder struct {
	Match    *club.Match
	PlayerID string
	// Position is the 0-indexed position of the player on the waitlist at
	// the time the reminder was scheduled.
	Position int
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendWaitlistReminder(reminder WaitlistReminder, dryRun bool) error
}
