package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Registrations      prometheus.Counter
	Cancellations      prometheus.Counter
	MatchFull          prometheus.Counter
	WalletTopUps       prometheus.Counter
	RemindersSent      prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	SheetCallDuration  prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
