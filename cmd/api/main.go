// Package main provides the entrypoint for the RouteStitch API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/api"
	"github.com/routestitch/routestitch/internal/api/middleware"
	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/database"
	"github.com/routestitch/routestitch/internal/journey"
	"github.com/routestitch/routestitch/internal/livetrain"
	"github.com/routestitch/routestitch/internal/livetrain/rappid"
	"github.com/routestitch/routestitch/internal/place"
	"github.com/routestitch/routestitch/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "routestitch-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting RouteStitch API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Choose the corridor catalogue source. The built-in catalogue
	// keeps local development free of infrastructure.
	var corridorRepo corridor.Repository
	if os.Getenv("DB_ENABLED") == "true" {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")
		corridorRepo = corridor.NewPostgresRepository(pool)
	} else {
		corridorRepo = corridor.NewInMemoryRepository(corridor.DefaultCatalogue())
		log.Info().Msg("using built-in corridor catalogue")
	}

	// Initialize corridor service
	corridorService, err := corridor.NewService(ctx, corridor.ServiceConfig{
		Repository: corridorRepo,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load corridor catalogue")
	}

	// Initialize live train provider and caching service
	rappidClient := rappid.NewClient(rappid.ClientConfig{
		BaseURL: os.Getenv("RAPPID_BASE_URL"),
		Logger:  log,
	})
	liveTrainService := livetrain.NewService(livetrain.ServiceConfig{
		Provider: rappidClient,
		Logger:   log,
	})
	log.Info().Str("provider", liveTrainService.ProviderName()).Msg("live train service initialized")

	// Initialize planner
	planner := journey.NewPlanner(journey.PlannerConfig{
		Corridors:  corridorService,
		LiveTrains: liveTrainService,
		Logger:     log,
	})
	log.Info().Msg("planner initialized")

	// Initialize place service
	placeService := place.NewService(place.ServiceConfig{Logger: log})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		Planner:          planner,
		CorridorService:  corridorService,
		LiveTrainService: liveTrainService,
		PlaceService:     placeService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
