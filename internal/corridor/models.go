// Package corridor resolves origin-destination pairs to pre-catalogued
// transport option templates.
package corridor

// TrainOption is a scheduled train candidate within a corridor.
type TrainOption struct {
	Name            string
	Number          string
	DurationMinutes int
	Cost            int
	Departure       string // HH:MM scheduled departure
	Class           string
}

// BusOption is a scheduled bus candidate within a corridor.
type BusOption struct {
	Operator        string
	BusType         string
	DurationMinutes int
	Cost            int
	Departure       string
}

// FlightOption is a scheduled flight candidate within a corridor.
type FlightOption struct {
	Airline         string
	Number          string
	DurationMinutes int
	Cost            int
	Departure       string
}

// Corridor is a known origin-destination pair with its candidate
// options per mode. Templates are read-only once loaded.
type Corridor struct {
	Key        string // "origin-destination", lowercase city names
	DistanceKM int
	Trains     []TrainOption
	Buses      []BusOption
	Flights    []FlightOption
}

// Empty reports whether the corridor has no candidates in any mode.
func (c *Corridor) Empty() bool {
	return len(c.Trains) == 0 && len(c.Buses) == 0 && len(c.Flights) == 0
}
