package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/config"
	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/handlers"
	"github.com/jinu2024/TrainBookingSystem/models"
	"github.com/jinu2024/TrainBookingSystem/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)
	log.Info("Starting Train Booking System")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, log); err != nil {
		log.WithError(err).Fatal("Failed to apply schema")
	}

	store := database.NewStore(db)
	users := services.NewUserService(store, services.NewBcryptHasher(), log)
	sessions := services.NewSessionService(store, users, cfg.SessionTTL, log)

	svc := handlers.Services{
		Catalog:    services.NewCatalogService(store, log),
		Schedules:  services.NewScheduleService(store, log),
		Bookings:   services.NewBookingService(store, services.MockGateway{}, log),
		Sessions:   sessions,
		Users:      users,
		Passengers: services.NewPassengerService(store, log),
	}

	if cfg.HasAdminBootstrap() {
		created, err := users.EnsureAdmin(ctx, models.AdminRequest{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to bootstrap admin account")
		}
		if created {
			log.WithField("username", cfg.AdminUsername).Info("Admin account created")
		}
	}

	resumeSession(ctx, sessions, log)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handlers.NewRouter(handlers.New(svc, store, log)),
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.ServerPort).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		os.Exit(1)
	}

	log.Info("Server exited")
}

// resumeSession sweeps stale sessions and reports the customer whose
// session would be picked up by auto-login.
func resumeSession(ctx context.Context, sessions *services.SessionService, log *logrus.Logger) {
	ss, err := sessions.ResumeLatestSession(ctx)
	switch {
	case err == nil:
		log.WithField("username", ss.User.Username).Info("Resumable customer session found")
	case errors.Is(err, services.ErrNotFound):
		log.Debug("No resumable session")
	default:
		log.WithError(err).Warn("Session resume check failed")
	}
}
