package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/events"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListMatchesHandler returns every match with its roster and waitlist.
func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Matches.FetchAll(r.Context())
		if err != nil {
			log.Error("Failed to fetch matches", "error", err)
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

// RegisterPlayerHandler adds a player to the roster or waitlist of a match.
func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	type request struct {
		Player  string `json:"jugador"`
		MatchID string `json:"partidoId"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "invalid JSON body")
			return
		}
		if req.Player == "" || req.MatchID == "" {
			writeValidationError(w, "jugador and partidoId are required")
			return
		}

		match, err := s.Registration.Register(r.Context(), req.MatchID, req.Player, isDryRunFromContext(r))
		if err != nil {
			log.Error("Registration failed", "matchID", req.MatchID, "player", req.Player, "error", err)
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Inscripción exitosa",
			"partido": match,
		})
	}
}

// CancelPlayerHandler removes a player from the roster and waitlist of a
// match. Cancelling a player who is not registered succeeds without
// changing the match.
func (s *Server) CancelPlayerHandler() http.HandlerFunc {
	type request struct {
		Player  string `json:"jugador"`
		MatchID string `json:"partidoId"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "invalid JSON body")
			return
		}
		if req.Player == "" || req.MatchID == "" {
			writeValidationError(w, "jugador and partidoId are required")
			return
		}

		match, err := s.Registration.Cancel(r.Context(), req.MatchID, req.Player, isDryRunFromContext(r))
		if err != nil {
			log.Error("Cancellation failed", "matchID", req.MatchID, "player", req.Player, "error", err)
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cancelación exitosa",
			"partido": match,
		})
	}
}

// PlayerLevelHandler returns the average skill level voted for a player,
// formatted with two decimals.
func (s *Server) PlayerLevelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("userId")
		level, err := s.Votes.AverageLevel(r.Context(), userID)
		if err != nil {
			log.Error("Failed to compute level", "userID", userID, "error", err)
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"nivel": fmt.Sprintf("%.2f", level),
		})
	}
}

// TopUpWalletHandler charges the payment gateway and adds the amount to
// the stored balance of the user. A successful charge followed by a
// failed balance write is logged with the intent id and not compensated.
func (s *Server) TopUpWalletHandler() http.HandlerFunc {
	type request struct {
		UserID string  `json:"userId"`
		Amount float64 `json:"amount"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "invalid JSON body")
			return
		}
		if req.UserID == "" || req.Amount <= 0 {
			writeValidationError(w, "userId and a positive amount are required")
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would top up wallet", "userID", req.UserID, "amount", req.Amount)
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "saldoActualizado": req.Amount})
			return
		}

		// The gateway works in minor units (cents).
		charge, err := s.Gateway.Charge(r.Context(), int64(req.Amount*100), s.Cfg.Stripe.Currency)
		if err != nil {
			log.Error("Gateway charge failed", "userID", req.UserID, "amount", req.Amount, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error: "Error recargando el monedero: " + err.Error(),
				Kind:  kindUpstream,
			})
			return
		}

		balance, err := s.Users.AddBalance(r.Context(), req.UserID, req.Amount)
		if err != nil {
			// The charge already went through. Keep the intent id around so
			// the mismatch can be reconciled by hand.
			log.Error("Balance write failed after successful charge",
				"userID", req.UserID, "amount", req.Amount, "intentID", charge.IntentID, "error", err)
			s.writeError(w, err)
			return
		}

		s.Metrics.IncWalletTopUps()
		if err := s.Publisher.Publish(events.EventWalletToppedUp, events.WalletEvent{
			UserID:  req.UserID,
			Amount:  req.Amount,
			Balance: balance,
		}); err != nil {
			log.Error("Failed to publish wallet event", "userID", req.UserID, "error", err)
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":          true,
			"saldoActualizado": balance,
		})
	}
}

// RegisterUserHandler creates a new user row. Nickname and email are
// required; the email must not already be registered.
func (s *Server) RegisterUserHandler() http.HandlerFunc {
	type request struct {
		Nickname string `json:"nickname"`
		Email    string `json:"email"`
		Whatsapp string `json:"whatsapp"`
		Level    string `json:"nivel"`
		Category string `json:"categoria"`
		Country  string `json:"pais"`
		Flag     string `json:"bandera"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "invalid JSON body")
			return
		}
		if strings.TrimSpace(req.Nickname) == "" || strings.TrimSpace(req.Email) == "" {
			writeValidationError(w, "nickname and email are required")
			return
		}
		if req.Flag == "" {
			req.Flag = "🏳"
		}

		user := club.User{
			Nickname: req.Nickname,
			Email:    req.Email,
			Whatsapp: req.Whatsapp,
			Level:    req.Level,
			Category: req.Category,
			Country:  req.Country,
			Flag:     req.Flag,
		}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would register user", "nickname", req.Nickname)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Usuario registrado correctamente"})
			return
		}
		if err := s.Users.Register(r.Context(), user); err != nil {
			log.Error("User registration failed", "nickname", req.Nickname, "error", err)
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Usuario registrado correctamente"})
	}
}

// writeError maps a domain error onto a status code and machine-readable
// kind. Unknown errors are treated as upstream failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, club.ErrMatchNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Partido no encontrado", Kind: kindNotFound})
	case errors.Is(err, club.ErrMatchFull):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "El partido ya está lleno", Kind: kindMatchFull})
	case errors.Is(err, club.ErrAlreadyRegistered):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Ya estás inscrito en este partido", Kind: kindAlreadyRegistered})
	case errors.Is(err, club.ErrUserNotFound):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Usuario no encontrado", Kind: kindNotFound})
	case errors.Is(err, club.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Este correo ya está registrado", Kind: kindConflict})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: kindUpstream})
	}
}

func writeValidationError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Kind: kindValidation})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
