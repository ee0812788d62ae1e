package place_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/place"
)

func newTestService() *place.Service {
	return place.NewService(place.ServiceConfig{Logger: zerolog.New(io.Discard)})
}

func TestSearchPrefixMatch(t *testing.T) {
	svc := newTestService()

	results := svc.Search("del", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Delhi", results[0].Name)
	assert.Equal(t, "DEL", results[0].Airport)
}

func TestSearchAliasMatch(t *testing.T) {
	svc := newTestService()

	results := svc.Search("bombay", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Mumbai", results[0].Name)
}

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	svc := newTestService()

	// "ko" prefixes Kochi and Kolkata and appears inside Lucknow's
	// LKO alias, so Lucknow must sort after the prefix matches.
	results := svc.Search("ko", 10)
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "Kochi", results[0].Name)
	assert.Equal(t, "Kolkata", results[1].Name)
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc := newTestService()

	results := svc.Search("  CHENNAI ", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Chennai", results[0].Name)
}

func TestSearchLimit(t *testing.T) {
	svc := newTestService()

	results := svc.Search("a", 2)
	assert.Len(t, results, 2)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService()

	assert.Nil(t, svc.Search("", 10))
	assert.Nil(t, svc.Search("   ", 10))
}

func TestSearchNoMatch(t *testing.T) {
	svc := newTestService()

	assert.Empty(t, svc.Search("zurich", 10))
}

func TestSearchDefaultLimit(t *testing.T) {
	svc := newTestService()

	results := svc.Search("a", 0)
	assert.LessOrEqual(t, len(results), place.DefaultLimit)
	assert.NotEmpty(t, results)
}

func TestSearchCustomCatalogue(t *testing.T) {
	svc := place.NewService(place.ServiceConfig{
		Cities: []place.City{{Name: "Indore", State: "Madhya Pradesh", Station: "Indore Junction", Airport: "IDR"}},
		Logger: zerolog.New(io.Discard),
	})

	results := svc.Search("ind", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Indore", results[0].Name)
}
