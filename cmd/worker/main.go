// Package main provides the entrypoint for the RouteStitch status
// refresh worker.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/database"
	"github.com/routestitch/routestitch/internal/livetrain"
	"github.com/routestitch/routestitch/internal/livetrain/rappid"
	"github.com/routestitch/routestitch/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "routestitch-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting RouteStitch worker")

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Choose the corridor catalogue source, same as the API server.
	var corridorRepo corridor.Repository
	if os.Getenv("DB_ENABLED") == "true" {
		pool, err := database.Connect(ctx, database.ConfigFromEnv())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		corridorRepo = corridor.NewPostgresRepository(pool)
	} else {
		corridorRepo = corridor.NewInMemoryRepository(corridor.DefaultCatalogue())
	}

	corridorService, err := corridor.NewService(ctx, corridor.ServiceConfig{
		Repository: corridorRepo,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load corridor catalogue")
	}

	liveTrainService := livetrain.NewService(livetrain.ServiceConfig{
		Provider: rappid.NewClient(rappid.ClientConfig{
			BaseURL: os.Getenv("RAPPID_BASE_URL"),
			Logger:  log,
		}),
		Logger: log,
	})

	refreshJob := worker.NewRefreshJob(worker.RefreshJobConfig{
		Config:           worker.DefaultRefreshConfig(corridorService.All()),
		Logger:           log,
		LiveTrainService: liveTrainService,
	})

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Prefer Pub/Sub triggered refreshes when configured, otherwise
	// fall back to a periodic schedule.
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID != "" {
		subscription := os.Getenv("PUBSUB_SUBSCRIPTION")
		if subscription == "" {
			subscription = "status-refresh"
		}

		handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
			ProjectID:        projectID,
			SubscriptionName: subscription,
			RefreshJob:       refreshJob,
			Logger:           log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create pubsub handler")
		}
		defer handler.Close()

		go func() {
			if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("pubsub handler stopped")
			}
		}()
	} else {
		interval := 5 * time.Minute
		if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				interval = parsed
			}
		}

		go func() {
			log.Info().Dur("interval", interval).Msg("running periodic refresh")
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			refreshJob.Run(ctx)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					refreshJob.Run(ctx)
				}
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
