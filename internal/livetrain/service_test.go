package livetrain_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/livetrain"
)

type mockProvider struct {
	info  *livetrain.TrainInfo
	err   error
	calls atomic.Int32
}

func (m *mockProvider) GetTrain(_ context.Context, _ string) (*livetrain.TrainInfo, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

func (m *mockProvider) Name() string { return "mock" }

func testInfo() *livetrain.TrainInfo {
	return &livetrain.TrainInfo{
		TrainNumber: "12951",
		TrainName:   "Rajdhani Express",
		From:        "New Delhi",
		To:          "Mumbai Central",
		Departure:   "16:55",
		Delay:       "On Time",
		Stations: []livetrain.StationStatus{
			{StationName: "New Delhi", Timing: "16:55", Delay: "On Time"},
			{StationName: "Kota Jn", Timing: "21:35", Delay: "5 min Late", IsCurrentStation: true},
			{StationName: "Vadodara Jn", Timing: "02:35"},
		},
	}
}

func newTestService(provider livetrain.Provider, ttl time.Duration) *livetrain.Service {
	return livetrain.NewService(livetrain.ServiceConfig{
		Provider: provider,
		Logger:   zerolog.New(io.Discard),
		CacheTTL: ttl,
	})
}

func TestGetTrainCachesResult(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Minute)

	first, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)
	second, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), provider.calls.Load())
}

func TestGetTrainRefetchesAfterExpiry(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Nanosecond)

	_, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.calls.Load())
}

func TestGetTrainServesStaleOnProviderError(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Nanosecond)

	first, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	provider.err = livetrain.ErrProviderUnavailable

	second, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetTrainErrorWithoutCache(t *testing.T) {
	provider := &mockProvider{err: livetrain.ErrTrainNotFound}
	svc := newTestService(provider, time.Minute)

	_, err := svc.GetTrain(context.Background(), "99999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, livetrain.ErrTrainNotFound))
	assert.False(t, errors.Is(err, livetrain.ErrProviderUnavailable))
}

func TestGetTrainTransportFailureMapsToUnavailable(t *testing.T) {
	provider := &mockProvider{err: fmt.Errorf("executing request: connection refused")}
	svc := newTestService(provider, time.Minute)

	_, err := svc.GetTrain(context.Background(), "12951")
	require.Error(t, err)
	assert.True(t, errors.Is(err, livetrain.ErrProviderUnavailable))
}

func TestInvalidateCache(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Minute)

	_, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)

	svc.InvalidateCache()

	_, err = svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)
	assert.Equal(t, int32(2), provider.calls.Load())
}

func TestCacheStats(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Minute)

	stats := svc.CacheStats()
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Equal(t, "mock", stats.Provider)

	_, err := svc.GetTrain(context.Background(), "12951")
	require.NoError(t, err)

	stats = svc.CacheStats()
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 1, stats.FreshEntries)
	assert.Equal(t, 0, stats.StaleEntries)
}

func TestGetSummary(t *testing.T) {
	provider := &mockProvider{info: testInfo()}
	svc := newTestService(provider, time.Minute)

	summary, err := svc.GetSummary(context.Background(), "12951")
	require.NoError(t, err)
	assert.Equal(t, "Rajdhani Express", summary.TrainName)
	assert.Equal(t, "Kota Jn", summary.CurrentStation)
	assert.Equal(t, "5 min Late", summary.DelayStatus)
	require.Len(t, summary.NextStations, 1)
	assert.Equal(t, "Vadodara Jn", summary.NextStations[0].StationName)
}

func TestSummarizeNoCurrentStation(t *testing.T) {
	info := testInfo()
	info.Stations[1].IsCurrentStation = false

	summary := info.Summarize()
	assert.Equal(t, "New Delhi", summary.CurrentStation)
	assert.Equal(t, "On Time", summary.DelayStatus)
	assert.Len(t, summary.NextStations, 2)
}

func TestProviderName(t *testing.T) {
	svc := newTestService(&mockProvider{}, time.Minute)
	assert.Equal(t, "mock", svc.ProviderName())
}
