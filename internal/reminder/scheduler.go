package reminder

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/notifier"
)

// NewScheduler creates and starts a reminder scheduler.
func NewScheduler(store Store, notif notifier.Notifier, metricsSvc metrics.Metrics) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	sched.Start()
	return &Scheduler{
		store:    store,
		notifier: notif,
		metrics:  metricsSvc,
		sched:    sched,
		now:      time.Now,
		jobs:     make(map[string]jobHandle),
	}, nil
}

// ScheduleForMatch replaces the pending reminders of the match with a
// fresh staggered schedule for its current waitlist. Calling it after
// every mutation of the match keeps stale reminders from firing.
func (s *Scheduler) ScheduleForMatch(match *club.Match) error {
	if err := s.CancelForMatch(match.ID); err != nil {
		return err
	}

	now := s.now()
	for position, playerID := range match.Waitlist {
		r := &Reminder{
			ID:        uuid.New().String(),
			MatchID:   match.ID,
			PlayerID:  playerID,
			Position:  position,
			FireAt:    now.Add(time.Duration(position) * Stagger),
			Status:    StatusPending,
			CreatedAt: now,
		}
		if err := s.store.Insert(r); err != nil {
			return err
		}
		if err := s.arm(r, match); err != nil {
			return err
		}
		log.Info("Scheduled waitlist reminder", "matchID", match.ID, "playerID", playerID, "fireAt", r.FireAt)
	}
	return nil
}

// CancelForMatch cancels every pending reminder of the match, both in the
// store and on the running scheduler.
func (s *Scheduler) CancelForMatch(matchID string) error {
	cancelled, err := s.store.CancelForMatch(matchID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	for reminderID, handle := range s.jobs {
		if handle.matchID != matchID {
			continue
		}
		if err := s.sched.RemoveJob(handle.jobID); err != nil {
			log.Debug("Job already gone", "reminderID", reminderID, "error", err)
		}
		delete(s.jobs, reminderID)
	}
	s.mu.Unlock()

	if cancelled > 0 {
		log.Info("Cancelled pending reminders", "matchID", matchID, "count", cancelled)
	}
	return nil
}

// Restore re-arms every pending reminder from the store. Overdue
// reminders fire immediately. Called once at startup.
func (s *Scheduler) Restore(fetch func(matchID string) (*club.Match, error)) error {
	pending, err := s.store.Pending()
	if err != nil {
		return err
	}
	for _, r := range pending {
		match, err := fetch(r.MatchID)
		if err != nil {
			log.Warn("Dropping reminder for unknown match", "matchID", r.MatchID, "error", err)
			continue
		}
		if err := s.arm(r, match); err != nil {
			return err
		}
	}
	if len(pending) > 0 {
		log.Info("Restored pending reminders", "count", len(pending))
	}
	return nil
}

// Stop shuts the underlying scheduler down, abandoning in-memory jobs.
// Pending rows stay in the store for the next Restore.
func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) arm(r *Reminder, match *club.Match) error {
	var startAt gocron.OneTimeJobStartAtOption
	if fireAt := r.FireAt; fireAt.After(s.now()) {
		startAt = gocron.OneTimeJobStartDateTime(fireAt)
	} else {
		startAt = gocron.OneTimeJobStartImmediately()
	}

	reminderID := r.ID
	entry := notifier.WaitlistReminder{
		Match:    match,
		PlayerID: r.PlayerID,
		Position: r.Position,
	}
	job, err := s.sched.NewJob(
		gocron.OneTimeJob(startAt),
		gocron.NewTask(func() {
			s.fire(reminderID, entry)
		}),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.jobs[reminderID] = jobHandle{jobID: job.ID(), matchID: r.MatchID}
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) fire(reminderID string, entry notifier.WaitlistReminder) {
	s.mu.Lock()
	delete(s.jobs, reminderID)
	s.mu.Unlock()

	sent, err := s.store.MarkSent(reminderID)
	if err != nil {
		log.Error("Failed to mark reminder sent", "reminderID", reminderID, "error", err)
		return
	}
	if !sent {
		// Cancelled between scheduling and firing.
		log.Debug("Skipping reminder no longer pending", "reminderID", reminderID)
		return
	}
	if err := s.notifier.SendWaitlistReminder(entry, false); err != nil {
		log.Error("Failed to send waitlist reminder", "reminderID", reminderID, "error", err)
		return
	}
	s.metrics.IncRemindersSent()
	log.Info("Waitlist reminder sent", "matchID", entry.Match.ID, "playerID", entry.PlayerID, "position", entry.Position)
}
