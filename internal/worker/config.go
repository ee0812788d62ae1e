// Package worker provides background job processing for RouteStitch.
package worker

import (
	"time"

	"github.com/routestitch/routestitch/internal/corridor"
)

// RefreshTarget represents one corridor's train candidates to refresh.
type RefreshTarget struct {
	// Corridor is the corridor key, e.g. "delhi-mumbai".
	Corridor string

	// TrainNumbers are the train candidates whose live status to warm.
	TrainNumbers []string

	// Priority determines refresh order (lower = higher priority).
	Priority int
}

// RefreshConfig holds configuration for the live status refresh job.
type RefreshConfig struct {
	// Targets are the corridors to refresh. If empty, targets must be
	// derived from the corridor catalogue via TargetsFromCorridors.
	Targets []RefreshTarget

	// Concurrency is the number of concurrent refresh operations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each refresh operation.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultRefreshConfig returns the default refresh configuration for
// the given corridor catalogue.
func DefaultRefreshConfig(corridors []*corridor.Corridor) RefreshConfig {
	return RefreshConfig{
		Targets:     TargetsFromCorridors(corridors),
		Concurrency: 3,
		Timeout:     30 * time.Second,
	}
}

// TargetsFromCorridors builds refresh targets from the corridor
// catalogue, one target per corridor that has train candidates.
func TargetsFromCorridors(corridors []*corridor.Corridor) []RefreshTarget {
	targets := make([]RefreshTarget, 0, len(corridors))
	for i, c := range corridors {
		if len(c.Trains) == 0 {
			continue
		}
		numbers := make([]string, 0, len(c.Trains))
		for _, t := range c.Trains {
			numbers = append(numbers, t.Number)
		}
		targets = append(targets, RefreshTarget{
			Corridor:     c.Key,
			TrainNumbers: numbers,
			Priority:     i + 1,
		})
	}
	return targets
}

// AllTrainNumbers returns all train numbers from all targets,
// deduplicated, in target order.
func (c RefreshConfig) AllTrainNumbers() []string {
	seen := make(map[string]struct{})
	var numbers []string
	for _, target := range c.Targets {
		for _, n := range target.TrainNumbers {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// TotalTrains returns the total number of distinct trains to refresh.
func (c RefreshConfig) TotalTrains() int {
	return len(c.AllTrainNumbers())
}
