package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/config"
	"github.com/jorgebm/padel-partidos/internal/database"
	"github.com/jorgebm/padel-partidos/internal/events"
	server "github.com/jorgebm/padel-partidos/internal/http"
	"github.com/jorgebm/padel-partidos/internal/metrics"
	slacknotifier "github.com/jorgebm/padel-partidos/internal/notifier/slack"
	"github.com/jorgebm/padel-partidos/internal/payment"
	"github.com/jorgebm/padel-partidos/internal/registration"
	"github.com/jorgebm/padel-partidos/internal/reminder"
	"github.com/jorgebm/padel-partidos/internal/sheet"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	sheetClient, err := sheet.NewClient(context.Background(), cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to initialize sheets client: %s", err)
	}

	matchStore := club.NewMatchStore(sheetClient)
	userStore := club.NewUserStore(sheetClient)
	voteStore := club.NewVoteStore(sheetClient)

	notifier := slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	scheduler, err := reminder.NewScheduler(reminder.NewStore(db), notifier, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to initialize reminder scheduler: %s", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Error("Reminder scheduler shutdown failed", "error", err)
		}
	}()

	// Re-arm reminders that were pending when the previous process exited.
	err = scheduler.Restore(func(matchID string) (*club.Match, error) {
		return matchStore.FetchByID(context.Background(), matchID)
	})
	if err != nil {
		log.Error("Failed to restore pending reminders", "error", err)
	}

	publisher := events.New(cfg.ProjectID)
	gateway := payment.NewStripeClient(cfg.Stripe.SecretKey)
	registrationSvc := registration.New(matchStore, scheduler, publisher, metricsSvc)

	s := server.NewServer(
		matchStore,
		userStore,
		voteStore,
		registrationSvc,
		gateway,
		publisher,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
