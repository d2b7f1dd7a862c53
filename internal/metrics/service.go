package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_registrations_total",
			Help: "The total number of successful match registrations.",
		}),
		Cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_cancellations_total",
			Help: "The total number of successful match cancellations.",
		}),
		MatchFull: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_match_full_total",
			Help: "The total number of registrations rejected because the match was full.",
		}),
		WalletTopUps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_wallet_topups_total",
			Help: "The total number of successful wallet top-ups.",
		}),
		RemindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_reminders_sent_total",
			Help: "The total number of waitlist reminders fired.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partidos_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		SheetCallDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "partidos_sheet_call_duration_seconds",
			Help:    "The duration of individual calls to the backing sheet.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "partidos_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Registrations,
		s.Cancellations,
		s.MatchFull,
		s.WalletTopUps,
		s.RemindersSent,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.SheetCallDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRegistrations() {
	s.Registrations.Inc()
}

func (s *Service) IncCancellations() {
	s.Cancellations.Inc()
}

func (s *Service) IncMatchFull() {
	s.MatchFull.Inc()
}

func (s *Service) IncWalletTopUps() {
	s.WalletTopUps.Inc()
}

func (s *Service) IncRemindersSent() {
	s.RemindersSent.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) ObserveSheetCallDuration(duration float64) {
	s.SheetCallDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
