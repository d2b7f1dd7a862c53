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

type Server struct {
	Matches        club.MatchStore
	Users          club.UserStore
	Votes          club.VoteStore
	Registration   *registration.Service
	Gateway        payment.Gateway
	Publisher      events.Publisher
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// errorResponse is the wire shape of every failure. The kind field is
// additive over the historical {error} shape so older clients keep
// working.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Machine-readable error kinds.
const (
	kindNotFound          = "not_found"
	kindMatchFull         = "match_full"
	kindAlreadyRegistered = "already_registered"
	kindConflict          = "conflict"
	kindValidation        = "validation"
	kindUpstream          = "upstream"
)
