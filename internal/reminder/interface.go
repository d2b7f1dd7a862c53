package reminder

// Store defines the persistence operations for reminders.
type Store interface {
	Insert(reminder *Reminder) error
	Pending() ([]*Reminder, error)
	PendingForMatch(matchID string) ([]*Reminder, error)
	// MarkSent transitions a pending reminder to sent. It reports false
	// when the reminder was already sent or cancelled in the meantime.
	MarkSent(id string) (bool, error)
	// CancelForMatch marks every pending reminder of the match cancelled
	// and returns how many rows were affected.
	CancelForMatch(matchID string) (int, error)
}
