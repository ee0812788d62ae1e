// Package api provides the HTTP API for RouteStitch.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/api/handler"
	"github.com/routestitch/routestitch/internal/api/middleware"
	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/journey"
	"github.com/routestitch/routestitch/internal/livetrain"
	"github.com/routestitch/routestitch/internal/place"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version          string
	BuildTime        string
	Logger           zerolog.Logger
	ServiceName      string
	Metrics          *middleware.Metrics
	Planner          *journey.Planner
	CorridorService  *corridor.Service
	LiveTrainService *livetrain.Service
	PlaceService     *place.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "routestitch-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.CorridorService, cfg.LiveTrainService)
	tripHandler := handler.NewTripHandler(cfg.Planner)
	trainHandler := handler.NewTrainHandler(cfg.LiveTrainService)
	metadataHandler := handler.NewMetadataHandler(cfg.CorridorService)
	placeHandler := handler.NewPlaceHandler(cfg.PlaceService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/corridors", metadataHandler.ListCorridors)
			r.Get("/enums", metadataHandler.GetEnums)
		})

		// Trip search endpoint - expensive compute, strict rate limiting
		r.With(expensiveRateLimit, middleware.RequireJSON).Post("/trips:search", tripHandler.SearchTrips)

		// Live train status - standard rate limiting
		r.With(standardRateLimit).Get("/trains/{trainNumber}/status", trainHandler.GetStatus)

		// Place search - standard rate limiting
		r.With(standardRateLimit).Get("/places:search", placeHandler.SearchPlaces)
	})

	return r
}
