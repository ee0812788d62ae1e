// Package journey provides multi-modal route generation and ranking.
package journey

// TransportMode represents a mode of transport for a single leg.
type TransportMode string

const (
	ModeTrain  TransportMode = "train"
	ModeBus    TransportMode = "bus"
	ModeFlight TransportMode = "flight"
	ModeMetro  TransportMode = "metro"
	ModeTaxi   TransportMode = "taxi"
	ModeAuto   TransportMode = "auto"
	ModeWalk   TransportMode = "walk"
)

// Preference selects the ranking objective for a trip search.
type Preference string

const (
	PreferenceFastest  Preference = "fastest"
	PreferenceCheapest Preference = "cheapest"
	PreferenceBalanced Preference = "balanced"
)

// Valid reports whether p is a known preference.
func (p Preference) Valid() bool {
	switch p {
	case PreferenceFastest, PreferenceCheapest, PreferenceBalanced:
		return true
	}
	return false
}

// Category is the badge assigned to a route during ranking.
type Category string

const (
	CategoryFastest     Category = "Fastest"
	CategoryCheapest    Category = "Cheapest"
	CategoryBestValue   Category = "Best Value"
	CategoryRecommended Category = "Recommended"
)

// Stop is an intermediate stop requested on the journey.
type Stop struct {
	Location        string `json:"location"`
	DurationMinutes int    `json:"duration"`
}

// Request is a validated trip search request. Structural validation
// (field formats, origin != destination) happens at the API boundary;
// the planner assumes it receives a well-formed request.
type Request struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Date        string     `json:"date"`           // YYYY-MM-DD
	Time        string     `json:"time,omitempty"` // HH:MM, 24-hour
	Passengers  int        `json:"passengers"`
	Preference  Preference `json:"preference"`
	Stops       []Stop     `json:"stops,omitempty"`
}

// BookingPlatform is a booking reference attached to a leg.
type BookingPlatform struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Note        string `json:"note,omitempty"`
	Recommended bool   `json:"recommended,omitempty"`
}

// LiveStatus is a display-only annotation from the live enrichment
// source. It never affects cost, duration or ranking.
type LiveStatus struct {
	CurrentStation string   `json:"currentStation,omitempty"`
	DelayStatus    string   `json:"delayStatus,omitempty"`
	LastUpdated    string   `json:"lastUpdated,omitempty"`
	NextStations   []string `json:"nextStations,omitempty"`
}

// Leg is one atomic movement segment of a route. Legs are immutable
// once assembled.
type Leg struct {
	Mode             TransportMode     `json:"mode"`
	From             string            `json:"from"`
	To               string            `json:"to"`
	Departure        string            `json:"departure"` // HH:MM, local wall clock
	Arrival          string            `json:"arrival"`
	Duration         string            `json:"duration"` // human readable, e.g. "2h 30m"
	DurationMinutes  int               `json:"durationMinutes"`
	Cost             int               `json:"cost"` // smallest display currency unit
	Operator         string            `json:"operator,omitempty"`
	TrainNumber      string            `json:"trainNumber,omitempty"`
	FlightNumber     string            `json:"flightNumber,omitempty"`
	BusType          string            `json:"busType,omitempty"`
	BookingPlatforms []BookingPlatform `json:"bookingPlatforms,omitempty"`
	Live             *LiveStatus       `json:"live,omitempty"`
}

// Route is an ordered chain of legs from the true origin to the true
// destination. Total cost and duration are the sums over the legs; the
// duration total is deliberately leg-sum based rather than derived from
// the first departure and last arrival, which can diverge when legs
// have gaps.
type Route struct {
	ID                   string   `json:"id"`
	TotalCost            int      `json:"totalCost"`
	TotalDuration        string   `json:"totalDuration"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	Reliability          int      `json:"reliability"` // 0-100 heuristic
	Category             Category `json:"category,omitempty"`
	Legs                 []Leg    `json:"legs"`
	Score                *float64 `json:"score,omitempty"` // set by ranking
}
