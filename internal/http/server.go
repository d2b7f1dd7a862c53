package http

import (
	"net/http"

	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/config"
	"github.com/jorgebm/padel-partidos/internal/events"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	"github.com/jorgebm/padel-partidos/internal/payment"
	"github.com/jorgebm/padel-partidos/internal/registration"
)

func NewServer(
	matches club.MatchStore,
	users club.UserStore,
	votes club.VoteStore,
	registrationSvc *registration.Service,
	gateway payment.Gateway,
	publisher events.Publisher,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
) *Server {
	server := &Server{
		Matches:        matches,
		Users:          users,
		Votes:          votes,
		Registration:   registrationSvc,
		Gateway:        gateway,
		Publisher:      publisher,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /partidos", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /partidos/inscribirse", Chain(s.RegisterPlayerHandler(), paramsMiddleware))
	s.Router.Handle("POST /partidos/cancelar", Chain(s.CancelPlayerHandler(), paramsMiddleware))
	s.Router.Handle("GET /nivel/{userId}", Chain(s.PlayerLevelHandler(), paramsMiddleware))
	s.Router.Handle("POST /recargar-monederovirtual", Chain(s.TopUpWalletHandler(), paramsMiddleware))
	s.Router.Handle("POST /registrar-usuario", Chain(s.RegisterUserHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
