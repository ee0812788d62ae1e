package models

import "github.com/routestitch/routestitch/internal/livetrain"

// TrainStation is one station row in a train status response.
type TrainStation struct {
	Name       string `json:"name"`
	DistanceKM int    `json:"distanceKm"`
	Timing     string `json:"timing,omitempty"`
	Delay      string `json:"delay,omitempty"`
	Platform   string `json:"platform,omitempty"`
	Halt       string `json:"halt,omitempty"`
	Current    bool   `json:"current,omitempty"`
}

// TrainStatus is the response of GET /v1/trains/{trainNumber}/status.
type TrainStatus struct {
	TrainNumber    string         `json:"trainNumber"`
	TrainName      string         `json:"trainName"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	Departure      string         `json:"departure"`
	Arrival        string         `json:"arrival,omitempty"`
	DurationMin    int            `json:"durationMinutes"`
	DistanceKM     int            `json:"distanceKm"`
	Delay          string         `json:"delay"`
	CurrentStation string         `json:"currentStation,omitempty"`
	LastUpdated    string         `json:"lastUpdated,omitempty"`
	NextStations   []TrainStation `json:"nextStations,omitempty"`
	Stations       []TrainStation `json:"stations"`
}

// NewTrainStatus builds the API view of live train data.
func NewTrainStatus(info *livetrain.TrainInfo) TrainStatus {
	summary := info.Summarize()

	status := TrainStatus{
		TrainNumber:    info.TrainNumber,
		TrainName:      info.TrainName,
		From:           info.From,
		To:             info.To,
		Departure:      info.Departure,
		Arrival:        info.Arrival,
		DurationMin:    info.Duration,
		DistanceKM:     info.DistanceKM,
		Delay:          info.Delay,
		CurrentStation: summary.CurrentStation,
		LastUpdated:    summary.LastUpdated,
		NextStations:   toTrainStations(summary.NextStations),
		Stations:       toTrainStations(info.Stations),
	}
	return status
}

func toTrainStations(stations []livetrain.StationStatus) []TrainStation {
	if len(stations) == 0 {
		return nil
	}
	out := make([]TrainStation, 0, len(stations))
	for _, s := range stations {
		out = append(out, TrainStation{
			Name:       s.StationName,
			DistanceKM: s.DistanceKM,
			Timing:     s.Timing,
			Delay:      s.Delay,
			Platform:   s.Platform,
			Halt:       s.Halt,
			Current:    s.IsCurrentStation,
		})
	}
	return out
}
