// Package livetrain provides best-effort live train status enrichment.
package livetrain

import (
	"context"
	"errors"
)

// Sentinel errors for live train operations.
var (
	// ErrProviderUnavailable indicates the live data provider is down or
	// the circuit breaker is open.
	ErrProviderUnavailable = errors.New("live train provider unavailable")
	// ErrTrainNotFound indicates the provider has no data for the train.
	ErrTrainNotFound = errors.New("train not found")
)

// Provider defines the interface for live train data providers.
type Provider interface {
	// GetTrain fetches the current schedule and running status for a
	// train number.
	GetTrain(ctx context.Context, trainNumber string) (*TrainInfo, error)

	// Name returns the provider identifier for logging.
	Name() string
}

// StationStatus is one station row of a train's running status.
type StationStatus struct {
	StationName      string
	DistanceKM       int
	Timing           string
	Delay            string
	Platform         string
	Halt             string
	IsCurrentStation bool
}

// TrainInfo is the live schedule and position data for one train.
type TrainInfo struct {
	TrainNumber string
	TrainName   string
	From        string
	To          string
	Departure   string // HH:MM
	Arrival     string // HH:MM, empty when the feed has no arrival yet
	Duration    int    // minutes
	DistanceKM  int
	Delay       string
	UpdatedAt   string // provider-reported freshness, display only
	Stations    []StationStatus
}

// Summary is the condensed live status shown on a route card: where
// the train currently is, how late it is running, and what comes next.
type Summary struct {
	TrainName      string
	CurrentStation string
	DelayStatus    string
	LastUpdated    string
	NextStations   []StationStatus
}

// Summarize derives a display summary from the station list. When no
// station is flagged as current the train either has not departed yet
// or has completed its run; both cases fall back to the nearest
// sensible station.
func (t *TrainInfo) Summarize() *Summary {
	s := &Summary{
		TrainName:   t.TrainName,
		DelayStatus: "Unknown",
		LastUpdated: t.UpdatedAt,
	}

	current := -1
	for i := range t.Stations {
		if t.Stations[i].IsCurrentStation {
			current = i
			break
		}
	}

	switch {
	case current >= 0:
		s.CurrentStation = t.Stations[current].StationName
		s.DelayStatus = t.Stations[current].Delay
		s.NextStations = nextStations(t.Stations, current+1)
	case len(t.Stations) > 0:
		first := t.Stations[0]
		last := t.Stations[len(t.Stations)-1]
		if last.Timing == "Destination" && last.DistanceKM > 0 {
			s.CurrentStation = last.StationName
			s.DelayStatus = last.Delay
		} else {
			s.CurrentStation = first.StationName
			s.DelayStatus = first.Delay
			s.NextStations = nextStations(t.Stations, 1)
		}
	}

	return s
}

func nextStations(stations []StationStatus, from int) []StationStatus {
	if from >= len(stations) {
		return nil
	}
	to := from + 3
	if to > len(stations) {
		to = len(stations)
	}
	return stations[from:to]
}
