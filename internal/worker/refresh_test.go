package worker_test

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/livetrain"
	"github.com/routestitch/routestitch/internal/worker"
)

type scriptedProvider struct {
	errs  map[string]error
	calls atomic.Int32
}

func (p *scriptedProvider) GetTrain(_ context.Context, trainNumber string) (*livetrain.TrainInfo, error) {
	p.calls.Add(1)
	if err, ok := p.errs[trainNumber]; ok {
		return nil, err
	}
	return &livetrain.TrainInfo{TrainNumber: trainNumber}, nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

func newRefreshJob(provider livetrain.Provider, targets []worker.RefreshTarget) *worker.RefreshJob {
	trains := livetrain.NewService(livetrain.ServiceConfig{
		Provider: provider,
		Logger:   zerolog.New(io.Discard),
	})
	return worker.NewRefreshJob(worker.RefreshJobConfig{
		Config:           worker.RefreshConfig{Targets: targets, Concurrency: 2, Timeout: time.Second},
		Logger:           zerolog.New(io.Discard),
		LiveTrainService: trains,
	})
}

func TestRunRefreshesAllTrains(t *testing.T) {
	provider := &scriptedProvider{}
	job := newRefreshJob(provider, []worker.RefreshTarget{
		{Corridor: "delhi-mumbai", TrainNumbers: []string{"12951", "12953", "12955"}},
	})

	result := job.Run(context.Background())

	assert.Equal(t, 3, result.TotalTrains)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.NotFound)
	assert.Empty(t, result.Errors)
	assert.Equal(t, int32(3), provider.calls.Load())
	assert.False(t, result.EndTime.Before(result.StartTime))
}

func TestRunCountsNotFoundSeparately(t *testing.T) {
	provider := &scriptedProvider{errs: map[string]error{
		"12953": livetrain.ErrTrainNotFound,
		"12955": livetrain.ErrProviderUnavailable,
	}}
	job := newRefreshJob(provider, []worker.RefreshTarget{
		{Corridor: "delhi-mumbai", TrainNumbers: []string{"12951", "12953", "12955"}},
	})

	result := job.Run(context.Background())

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.NotFound)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "12955", result.Errors[0].TrainNumber)
}

func TestRunUpdatesMetrics(t *testing.T) {
	provider := &scriptedProvider{errs: map[string]error{
		"12953": livetrain.ErrProviderUnavailable,
	}}
	job := newRefreshJob(provider, []worker.RefreshTarget{
		{Corridor: "delhi-mumbai", TrainNumbers: []string{"12951", "12953"}},
	})

	job.Run(context.Background())
	job.Run(context.Background())

	metrics := job.GetMetrics()
	assert.Equal(t, int64(2), metrics.TotalRuns)
	assert.Equal(t, int64(2), metrics.SuccessfulRefresh)
	assert.Equal(t, int64(2), metrics.FailedRefreshes)
	assert.False(t, metrics.LastRunAt.IsZero())

	snapshot := job.MetricsSnapshot()
	assert.Equal(t, int64(2), snapshot["total_runs"])
}

func TestRunEmptyTargets(t *testing.T) {
	provider := &scriptedProvider{}
	job := newRefreshJob(provider, nil)

	result := job.Run(context.Background())
	assert.Equal(t, 0, result.TotalTrains)
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestTargetsFromCorridors(t *testing.T) {
	catalogue := corridor.DefaultCatalogue()
	corridors := make([]*corridor.Corridor, len(catalogue))
	for i := range catalogue {
		corridors[i] = &catalogue[i]
	}

	targets := worker.TargetsFromCorridors(corridors)
	require.Len(t, targets, 5)
	assert.Equal(t, "delhi-mumbai", targets[0].Corridor)
	assert.Equal(t, []string{"12951", "12953", "12955"}, targets[0].TrainNumbers)
	assert.Equal(t, 1, targets[0].Priority)
}

func TestAllTrainNumbersDeduplicates(t *testing.T) {
	cfg := worker.RefreshConfig{Targets: []worker.RefreshTarget{
		{Corridor: "a-b", TrainNumbers: []string{"12951", "12953"}},
		{Corridor: "b-c", TrainNumbers: []string{"12953", "12627"}},
	}}

	assert.Equal(t, []string{"12951", "12953", "12627"}, cfg.AllTrainNumbers())
	assert.Equal(t, 3, cfg.TotalTrains())
}
