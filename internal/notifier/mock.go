package notifier

import "sync"

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendWaitlistReminderFunc func(reminder WaitlistReminder, dryRun bool) error

	// Call records
	SendWaitlistReminderCalls []WaitlistReminder
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWaitlistReminderCalls = nil
}

func (m *Mock) SendWaitlistReminder(reminder WaitlistReminder, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWaitlistReminderCalls = append(m.SendWaitlistReminderCalls, reminder)
	if m.SendWaitlistReminderFunc != nil {
		return m.SendWaitlistReminderFunc(reminder, dryRun)
	}
	return nil
}

// ReminderCalls returns a copy of the recorded reminder calls.
func (m *Mock) ReminderCalls() []WaitlistReminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]WaitlistReminder(nil), m.SendWaitlistReminderCalls...)
}
