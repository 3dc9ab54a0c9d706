package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PetroczyP/mergington-activities/internal/catalog"
	"github.com/PetroczyP/mergington-activities/internal/config"
	"github.com/PetroczyP/mergington-activities/internal/handlers"
	"github.com/PetroczyP/mergington-activities/internal/logging"
	"github.com/PetroczyP/mergington-activities/internal/notifier"
	"github.com/PetroczyP/mergington-activities/internal/registration"
)

func main() {
	// Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize Notifier
	activityNotifier, err := notifier.New(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
	if err != nil {
		logger.Warn("discord notifier not initialized", zap.Error(err))
		activityNotifier = notifier.Nop{}
	}
	if !cfg.DiscordEnabled() {
		logger.Info("discord notifications disabled")
	}

	// Initialize Handlers
	service := registration.NewService(catalog.Default(), logger.Named("registration"))
	activityHandler := handlers.NewActivityHandler(service, activityNotifier, logger.Named("handlers"), cfg.Lang())

	// Initialize Router
	r := chi.NewRouter()
	handlers.RegisterRoutes(r, cfg, logger.Named("http"), activityHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("default_lang", cfg.Lang().String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
