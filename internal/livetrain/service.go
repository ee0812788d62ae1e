package livetrain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the live train service.
type ServiceConfig struct {
	// Provider is the live train data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long to cache train data (default: 2 minutes).
	// Running status changes quickly, so the cache is short.
	CacheTTL time.Duration

	// StaleIfErrorTTL allows serving stale data on provider errors
	// (default: 15 minutes).
	StaleIfErrorTTL time.Duration

	// CleanupInterval is how often to clean up expired entries
	// (default: 10 minutes).
	CleanupInterval time.Duration
}

// Service provides live train status with caching. Enrichment is
// best-effort by contract: callers treat any error as "no live data".
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	cacheTTL        time.Duration
	staleIfErrorTTL time.Duration
	cleanupInterval time.Duration

	mu          sync.RWMutex
	cache       map[string]*cachedTrain
	lastCleanup time.Time
}

type cachedTrain struct {
	info      *TrainInfo
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new live train service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 2 * time.Minute
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 15 * time.Minute
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval == 0 {
		cleanupInterval = 10 * time.Minute
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		staleIfErrorTTL: staleIfErrorTTL,
		cleanupInterval: cleanupInterval,
		cache:           make(map[string]*cachedTrain),
	}
}

// GetTrain returns live data for a train number, using cached data when
// fresh.
func (s *Service) GetTrain(ctx context.Context, trainNumber string) (*TrainInfo, error) {
	s.mu.RLock()
	if cached, ok := s.cache[trainNumber]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		return cached.info, nil
	}
	s.mu.RUnlock()

	return s.fetchTrain(ctx, trainNumber)
}

// GetSummary returns the condensed live status for a train number.
func (s *Service) GetSummary(ctx context.Context, trainNumber string) (*Summary, error) {
	info, err := s.GetTrain(ctx, trainNumber)
	if err != nil {
		return nil, err
	}
	return info.Summarize(), nil
}

// fetchTrain fetches from the provider and updates the cache.
func (s *Service) fetchTrain(ctx context.Context, trainNumber string) (*TrainInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache (prevents thundering herd)
	if cached, ok := s.cache[trainNumber]; ok && time.Now().Before(cached.expiresAt) {
		return cached.info, nil
	}

	s.logger.Debug().
		Str("train_number", trainNumber).
		Str("provider", s.provider.Name()).
		Msg("fetching live train data from provider")

	info, err := s.provider.GetTrain(ctx, trainNumber)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("train_number", trainNumber).
			Msg("failed to fetch live train data")

		// An unknown train is an answer, not an outage.
		if errors.Is(err, ErrTrainNotFound) {
			return nil, err
		}

		// Stale-if-error: a slightly old position beats none at all.
		if cached, ok := s.cache[trainNumber]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Str("train_number", trainNumber).
					Msg("serving stale live train data due to provider error")
				return cached.info, nil
			}
		}

		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	now := time.Now()
	s.cache[trainNumber] = &cachedTrain{
		info:      info,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return info, nil
}

// cleanupIfNeeded removes entries past the stale-if-error window.
func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0

	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired live train cache entries")
	}
}

// InvalidateCache clears all cached data.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedTrain)
}

// CacheStats returns cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	fresh := 0
	stale := 0

	for _, c := range s.cache {
		if now.Before(c.expiresAt) {
			fresh++
		} else if now.Before(c.fetchedAt.Add(s.staleIfErrorTTL)) {
			stale++
		}
	}

	return CacheStats{
		TotalEntries: len(s.cache),
		FreshEntries: fresh,
		StaleEntries: stale,
		Provider:     s.provider.Name(),
	}
}

// CacheStats contains cache statistics.
type CacheStats struct {
	TotalEntries int
	FreshEntries int
	StaleEntries int
	Provider     string
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}
