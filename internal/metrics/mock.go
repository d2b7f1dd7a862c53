package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	registrations      int
	cancellations      int
	matchFull          int
	walletTopUps       int
	remindersSent      int
	slackNotifSent     int
	slackNotifFailed   int
	sheetCallDurations []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		sheetCallDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRegistrations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
}

func (m *Mock) IncCancellations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancellations++
}

func (m *Mock) IncMatchFull() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchFull++
}

func (m *Mock) IncWalletTopUps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.walletTopUps++
}

func (m *Mock) IncRemindersSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remindersSent++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) ObserveSheetCallDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheetCallDurations = append(m.sheetCallDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Registrations returns the number of times IncRegistrations was called.
func (m *Mock) Registrations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registrations
}

// Cancellations returns the number of times IncCancellations was called.
func (m *Mock) Cancellations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancellations
}

// MatchFull returns the number of times IncMatchFull was called.
func (m *Mock) MatchFull() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchFull
}

// WalletTopUps returns the number of times IncWalletTopUps was called.
func (m *Mock) WalletTopUps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.walletTopUps
}

// RemindersSent returns the number of times IncRemindersSent was called.
func (m *Mock) RemindersSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remindersSent
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
