package corridor_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/corridor"
)

func newTestService(t *testing.T) *corridor.Service {
	t.Helper()
	svc, err := corridor.NewService(context.Background(), corridor.ServiceConfig{
		Repository: corridor.NewInMemoryRepository(corridor.DefaultCatalogue()),
		Logger:     zerolog.New(io.Discard),
	})
	require.NoError(t, err)
	return svc
}

func TestLookup(t *testing.T) {
	svc := newTestService(t)

	c, ok := svc.Lookup("Delhi", "Mumbai")
	require.True(t, ok)
	assert.Equal(t, "delhi-mumbai", c.Key)
	assert.Len(t, c.Trains, 3)
	assert.Len(t, c.Buses, 2)
	assert.Len(t, c.Flights, 3)
}

func TestLookupReverseDirection(t *testing.T) {
	svc := newTestService(t)

	c, ok := svc.Lookup("Mumbai", "Delhi")
	require.True(t, ok)
	assert.Equal(t, "delhi-mumbai", c.Key)
}

func TestLookupNormalizesInput(t *testing.T) {
	svc := newTestService(t)

	c, ok := svc.Lookup("  DELHI ", "mumbai")
	require.True(t, ok)
	assert.Equal(t, "delhi-mumbai", c.Key)
}

func TestLookupMiss(t *testing.T) {
	svc := newTestService(t)

	c, ok := svc.Lookup("Indore", "Kochi")
	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestKeysSorted(t *testing.T) {
	svc := newTestService(t)

	keys := svc.Keys()
	require.Len(t, keys, 5)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestAllMatchesKeys(t *testing.T) {
	svc := newTestService(t)

	all := svc.All()
	keys := svc.Keys()
	require.Len(t, all, len(keys))
	for i, c := range all {
		assert.Equal(t, keys[i], c.Key)
	}
}

func TestNewServiceRepositoryError(t *testing.T) {
	_, err := corridor.NewService(context.Background(), corridor.ServiceConfig{
		Repository: failingRepository{},
		Logger:     zerolog.New(io.Discard),
	})
	require.Error(t, err)
}

type failingRepository struct{}

func (failingRepository) ListAll(context.Context) ([]corridor.Corridor, error) {
	return nil, errors.New("connection refused")
}

func TestCorridorEmpty(t *testing.T) {
	c := corridor.Corridor{Key: "a-b"}
	assert.True(t, c.Empty())

	c.Buses = []corridor.BusOption{{Operator: "X"}}
	assert.False(t, c.Empty())
}
