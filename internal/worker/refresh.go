package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/livetrain"
)

// RefreshJob warms the live train status cache so searches hit fresh
// data instead of paying the provider round trip.
type RefreshJob struct {
	config  RefreshConfig
	logger  zerolog.Logger
	trains  *livetrain.Service
	metrics *RefreshMetrics
}

// RefreshMetrics tracks refresh job statistics.
type RefreshMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns         int64
	SuccessfulRefresh int64
	FailedRefreshes   int64
	NotFoundRefreshes int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// RefreshJobConfig holds configuration for creating a RefreshJob.
type RefreshJobConfig struct {
	Config           RefreshConfig
	Logger           zerolog.Logger
	LiveTrainService *livetrain.Service
}

// NewRefreshJob creates a new refresh job processor.
func NewRefreshJob(cfg RefreshJobConfig) *RefreshJob {
	config := cfg.Config
	if config.Concurrency <= 0 {
		config.Concurrency = 3
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &RefreshJob{
		config:  config,
		logger:  cfg.Logger,
		trains:  cfg.LiveTrainService,
		metrics: &RefreshMetrics{},
	}
}

// RefreshResult contains the result of a refresh run.
type RefreshResult struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalTrains int
	Successful  int
	Failed      int
	NotFound    int
	Errors      []RefreshError
}

// RefreshError represents an error during refresh.
type RefreshError struct {
	TrainNumber string
	Error       string
}

// Run executes the refresh job for all configured targets.
func (j *RefreshJob) Run(ctx context.Context) *RefreshResult {
	startTime := time.Now()
	numbers := j.config.AllTrainNumbers()
	result := &RefreshResult{
		StartTime:   startTime,
		TotalTrains: len(numbers),
	}

	j.logger.Info().
		Int("total_trains", result.TotalTrains).
		Int("concurrency", j.config.Concurrency).
		Msg("starting live status refresh job")

	// Create work channels
	trainsChan := make(chan string, len(numbers))
	resultsChan := make(chan trainResult, len(numbers))

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.refreshWorker(ctx, trainsChan, resultsChan)
		}()
	}

	// Send trains to workers
	for _, n := range numbers {
		trainsChan <- n
	}
	close(trainsChan)

	// Wait for workers to complete
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Collect results
	for tr := range resultsChan {
		switch {
		case tr.notFound:
			result.NotFound++
		case tr.err != nil:
			result.Failed++
			result.Errors = append(result.Errors, RefreshError{
				TrainNumber: tr.trainNumber,
				Error:       tr.err.Error(),
			})
		default:
			result.Successful++
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	// Update metrics
	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Int("not_found", result.NotFound).
		Msg("live status refresh job completed")

	return result
}

type trainResult struct {
	trainNumber string
	err         error
	notFound    bool
}

func (j *RefreshJob) refreshWorker(ctx context.Context, trains <-chan string, results chan<- trainResult) {
	for trainNumber := range trains {
		select {
		case <-ctx.Done():
			return
		default:
			results <- j.refreshTrain(ctx, trainNumber)
		}
	}
}

func (j *RefreshJob) refreshTrain(ctx context.Context, trainNumber string) trainResult {
	trainCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	_, err := j.trains.GetTrain(trainCtx, trainNumber)
	if err != nil {
		// A train the feed does not know about stays unknown until the
		// catalogue changes; treat it as skipped rather than failed.
		if errors.Is(err, livetrain.ErrTrainNotFound) {
			j.logger.Debug().
				Str("train_number", trainNumber).
				Msg("train not known to live feed, skipping")
			return trainResult{trainNumber: trainNumber, notFound: true}
		}
		return trainResult{trainNumber: trainNumber, err: err}
	}
	return trainResult{trainNumber: trainNumber}
}

func (j *RefreshJob) updateMetrics(result *RefreshResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.SuccessfulRefresh += int64(result.Successful)
	j.metrics.FailedRefreshes += int64(result.Failed)
	j.metrics.NotFoundRefreshes += int64(result.NotFound)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *RefreshJob) GetMetrics() RefreshMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return RefreshMetrics{
		TotalRuns:         j.metrics.TotalRuns,
		SuccessfulRefresh: j.metrics.SuccessfulRefresh,
		FailedRefreshes:   j.metrics.FailedRefreshes,
		NotFoundRefreshes: j.metrics.NotFoundRefreshes,
		LastRunAt:         j.metrics.LastRunAt,
		LastRunDuration:   j.metrics.LastRunDuration,
		TotalDuration:     j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *RefreshJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":           m.TotalRuns,
		"successful_refreshes": m.SuccessfulRefresh,
		"failed_refreshes":     m.FailedRefreshes,
		"not_found_refreshes":  m.NotFoundRefreshes,
		"last_run_at":          m.LastRunAt,
		"last_run_duration":    m.LastRunDuration.String(),
		"total_duration":       m.TotalDuration.String(),
	}
}
