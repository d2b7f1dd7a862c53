package reminder

import (
	"database/sql"
	"fmt"
	"time"
)

// NewStore creates a new reminder store.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Insert(reminder *Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO reminders (id, match_id, player_id, position, fire_at, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		reminder.ID,
		reminder.MatchID,
		reminder.PlayerID,
		reminder.Position,
		reminder.FireAt.Unix(),
		string(reminder.Status),
		reminder.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (s *store) Pending() ([]*Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_id, player_id, position, fire_at, status, created_at
		FROM reminders
		WHERE status = ?
		ORDER BY fire_at ASC
	`, string(StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending reminders: %w", err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (s *store) PendingForMatch(matchID string) ([]*Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, match_id, player_id, position, fire_at, status, created_at
		FROM reminders
		WHERE match_id = ? AND status = ?
		ORDER BY fire_at ASC
	`, matchID, string(StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders for match %s: %w", matchID, err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (s *store) MarkSent(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE reminders SET status = ? WHERE id = ? AND status = ?",
		string(StatusSent), id, string(StatusPending),
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *store) CancelForMatch(matchID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE reminders SET status = ? WHERE match_id = ? AND status = ?",
		string(StatusCancelled), matchID, string(StatusPending),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel reminders for match %s: %w", matchID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func scanReminders(rows *sql.Rows) ([]*Reminder, error) {
	var reminders []*Reminder
	for rows.Next() {
		var r Reminder
		var fireAt, createdAt int64
		var status string
		if err := rows.Scan(&r.ID, &r.MatchID, &r.PlayerID, &r.Position, &fireAt, &status, &createdAt); err != nil {
			return nil, err
		}
		r.FireAt = time.Unix(fireAt, 0)
		r.CreatedAt = time.Unix(createdAt, 0)
		r.Status = Status(status)
		reminders = append(reminders, &r)
	}
	return reminders, rows.Err()
}
