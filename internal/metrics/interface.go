package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRegistrations()
	IncCancellations()
	IncMatchFull()
	IncWalletTopUps()
	IncRemindersSent()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	ObserveSheetCallDuration(duration float64)
	SetStartupTime(duration float64)
}
