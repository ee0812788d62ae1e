package journey_test

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/journey"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// mockLiveSource returns canned live data per train number.
type mockLiveSource struct {
	trains map[string]*livetrain.TrainInfo
	err    error
	calls  atomic.Int32
}

func (m *mockLiveSource) GetTrain(_ context.Context, trainNumber string) (*livetrain.TrainInfo, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	if info, ok := m.trains[trainNumber]; ok {
		return info, nil
	}
	return nil, livetrain.ErrTrainNotFound
}

func testCorridorService(t *testing.T) *corridor.Service {
	t.Helper()
	svc, err := corridor.NewService(context.Background(), corridor.ServiceConfig{
		Repository: corridor.NewInMemoryRepository(corridor.DefaultCatalogue()),
		Logger:     zerolog.New(io.Discard),
	})
	require.NoError(t, err)
	return svc
}

func newTestPlanner(t *testing.T, live journey.LiveTrainSource) *journey.Planner {
	t.Helper()
	return journey.NewPlanner(journey.PlannerConfig{
		Corridors:  testCorridorService(t),
		LiveTrains: live,
		Logger:     zerolog.New(io.Discard),
	})
}

func TestPlanKnownCorridor(t *testing.T) {
	p := newTestPlanner(t, nil)

	routes, err := p.Plan(context.Background(), testRequest())
	require.NoError(t, err)

	// 3 trains + 3 flights + 2 buses
	require.Len(t, routes, 8)

	// Every route is scored and the list is sorted descending
	for i, r := range routes {
		require.NotNil(t, r.Score, "route %d missing score", i)
		if i > 0 {
			assert.GreaterOrEqual(t, *routes[i-1].Score, *r.Score)
		}
	}
}

func TestPlanReverseDirection(t *testing.T) {
	p := newTestPlanner(t, nil)

	req := testRequest()
	req.Origin, req.Destination = req.Destination, req.Origin

	routes, err := p.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, routes, 8)
}

func TestPlanUnknownCorridorFallsBack(t *testing.T) {
	p := newTestPlanner(t, nil)

	req := testRequest()
	req.Origin = "Indore"
	req.Destination = "Kochi"

	routes, err := p.Plan(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, journey.CategoryRecommended, routes[0].Category)
	assert.Nil(t, routes[0].Score)
}

func TestPlanLiveEnrichment(t *testing.T) {
	live := &mockLiveSource{
		trains: map[string]*livetrain.TrainInfo{
			"12951": {
				TrainNumber: "12951",
				TrainName:   "Mumbai Rajdhani",
				From:        "New Delhi",
				To:          "Mumbai Central",
				Departure:   "16:55",
				Arrival:     "08:35",
				Duration:    940,
				DistanceKM:  1384,
			},
		},
	}
	p := newTestPlanner(t, live)

	routes, err := p.Plan(context.Background(), testRequest())
	require.NoError(t, err)

	// One live train replaces the three template trains
	require.Len(t, routes, 6)
	assert.Equal(t, int32(3), live.calls.Load())

	var liveTrains, templateTrains int
	for _, r := range routes {
		main := r.Legs[1]
		if main.Mode != journey.ModeTrain {
			continue
		}
		if main.From == "New Delhi" {
			liveTrains++
		} else {
			templateTrains++
		}
	}
	assert.Equal(t, 1, liveTrains)
	assert.Equal(t, 0, templateTrains)
}

func TestPlanLiveFailureDegradesToTemplates(t *testing.T) {
	live := &mockLiveSource{err: errors.New("provider down")}
	p := newTestPlanner(t, live)

	routes, err := p.Plan(context.Background(), testRequest())
	require.NoError(t, err)

	// All enrichment calls failed: full template set, nothing dropped
	assert.Len(t, routes, 8)
	assert.Equal(t, int32(3), live.calls.Load())
}
