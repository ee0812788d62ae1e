package place

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLimit is the maximum number of search results returned when
// the caller does not specify one.
const DefaultLimit = 10

// ServiceConfig holds configuration for the place service.
type ServiceConfig struct {
	// Cities overrides the built-in catalogue (default: DefaultCities).
	Cities []City

	// Logger for place operations.
	Logger zerolog.Logger
}

// Service answers place search queries against a static catalogue.
type Service struct {
	cities []City
	logger zerolog.Logger
}

// NewService creates a new place service.
func NewService(cfg ServiceConfig) *Service {
	cities := cfg.Cities
	if cities == nil {
		cities = DefaultCities()
	}

	return &Service{
		cities: cities,
		logger: cfg.Logger,
	}
}

// Search returns cities matching the query, prefix matches first.
// Matching is case-insensitive against names and aliases.
func (s *Service) Search(query string, limit int) []City {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	type match struct {
		city   City
		prefix bool
	}

	var matches []match
	for _, city := range s.cities {
		if ok, prefix := cityMatches(city, q); ok {
			matches = append(matches, match{city: city, prefix: prefix})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].prefix != matches[j].prefix {
			return matches[i].prefix
		}
		return matches[i].city.Name < matches[j].city.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]City, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.city)
	}
	return out
}

// cityMatches reports whether the city matches the lowercased query,
// and whether the match is a name or alias prefix.
func cityMatches(city City, q string) (matched, prefix bool) {
	name := strings.ToLower(city.Name)
	if strings.HasPrefix(name, q) {
		return true, true
	}
	if strings.Contains(name, q) {
		return true, false
	}
	for _, alias := range city.Aliases {
		a := strings.ToLower(alias)
		if strings.HasPrefix(a, q) {
			return true, true
		}
		if strings.Contains(a, q) {
			return true, false
		}
	}
	return false, false
}
