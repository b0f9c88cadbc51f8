package main

import (
	"context"   // context package is needed for startup and shutdown
	"errors"    // Error matching
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notifications
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"user_directory/internal/api"     // Custom package for API handlers
	"user_directory/internal/config"  // Custom package for configuration
	"user_directory/internal/events"  // Custom package for the mutation event log
	"user_directory/internal/logging" // Custom package for logger setup
	"user_directory/internal/service" // Custom package for the record service
	"user_directory/internal/store"   // Custom package for the user store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	startedAt := time.Now()
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logFile := logging.Setup(cfg)
	defer logFile.Close()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.Open(cfg.StoreFile) // Seed the in-memory users from the store file
	eventLog := events.FromConfig(context.Background(), cfg)
	defer eventLog.Close()
	users := service.NewUserService(st, eventLog)

	r, err := api.NewRouter(api.Dependencies{
		Config:    cfg,
		Store:     st,
		Users:     users,
		StartedAt: startedAt,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":        cfg.Addr(),
			"environment": cfg.Environment,
			"store_file":  cfg.StoreFile,
		}).Info("Server running")
		logrus.Infof("Health check available at: http://localhost:%s/api/health", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown error: %v", err)
	}
	logrus.Info("Server stopped")
}
