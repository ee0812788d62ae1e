package corridor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Service answers corridor lookups from an in-memory index loaded once
// at construction. Lookups have no side effects; an unknown pair is not
// an error, just a miss.
type Service struct {
	logger zerolog.Logger
	byKey  map[string]*Corridor
}

// ServiceConfig holds configuration for the corridor service.
type ServiceConfig struct {
	// Repository is the corridor catalogue source.
	Repository Repository

	// Logger for service operations.
	Logger zerolog.Logger
}

// NewService loads the full catalogue from the repository and builds
// the lookup index.
func NewService(ctx context.Context, cfg ServiceConfig) (*Service, error) {
	corridors, err := cfg.Repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corridor catalogue: %w", err)
	}

	byKey := make(map[string]*Corridor, len(corridors))
	for i := range corridors {
		byKey[corridors[i].Key] = &corridors[i]
	}

	cfg.Logger.Info().
		Int("corridors", len(byKey)).
		Msg("corridor catalogue loaded")

	return &Service{logger: cfg.Logger, byKey: byKey}, nil
}

// Lookup resolves an origin/destination pair to its corridor template,
// trying origin->destination first and then the reverse direction.
func (s *Service) Lookup(origin, destination string) (*Corridor, bool) {
	o := normalize(origin)
	d := normalize(destination)

	if c, ok := s.byKey[o+"-"+d]; ok {
		return c, true
	}
	if c, ok := s.byKey[d+"-"+o]; ok {
		return c, true
	}
	return nil, false
}

// All returns every corridor in key order.
func (s *Service) All() []*Corridor {
	out := make([]*Corridor, 0, len(s.byKey))
	for _, key := range s.Keys() {
		out = append(out, s.byKey[key])
	}
	return out
}

// Keys returns the known corridor keys in sorted order.
func (s *Service) Keys() []string {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
