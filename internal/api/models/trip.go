package models

import (
	"strings"
	"time"

	"github.com/routestitch/routestitch/internal/journey"
)

// Stop duration bounds in minutes.
const (
	MinStopDuration = 15
	MaxStopDuration = 4320
)

// TripStop is a requested intermediate stop.
type TripStop struct {
	Location        string `json:"location"`
	DurationMinutes int    `json:"duration"`
}

// TripSearchRequest is the body of POST /v1/trips:search.
type TripSearchRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Date        string     `json:"date"`
	Time        string     `json:"time,omitempty"`
	Passengers  int        `json:"passengers,omitempty"`
	Preference  string     `json:"preference,omitempty"`
	Stops       []TripStop `json:"stops,omitempty"`
}

// Validate checks the request and returns structured field errors.
// An empty slice means the request is valid.
func (req *TripSearchRequest) Validate() []FieldError {
	var errs []FieldError

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)

	if len(origin) < 2 {
		errs = append(errs, FieldError{
			Field:   "origin",
			Message: "must be at least 2 characters",
			Code:    "too_short",
		})
	}
	if len(destination) < 2 {
		errs = append(errs, FieldError{
			Field:   "destination",
			Message: "must be at least 2 characters",
			Code:    "too_short",
		})
	}
	if len(origin) >= 2 && strings.EqualFold(origin, destination) {
		errs = append(errs, FieldError{
			Field:   "destination",
			Message: "must differ from origin",
			Code:    "same_as_origin",
		})
	}

	if req.Date == "" {
		errs = append(errs, FieldError{
			Field:   "date",
			Message: "is required",
			Code:    "required",
		})
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errs = append(errs, FieldError{
			Field:   "date",
			Message: "must be a valid date in YYYY-MM-DD format",
			Code:    "invalid_format",
		})
	}

	if req.Time != "" {
		if _, err := time.Parse("15:04", req.Time); err != nil {
			errs = append(errs, FieldError{
				Field:   "time",
				Message: "must be a valid time in HH:MM format",
				Code:    "invalid_format",
			})
		}
	}

	if req.Passengers != 0 && (req.Passengers < 1 || req.Passengers > 9) {
		errs = append(errs, FieldError{
			Field:   "passengers",
			Message: "must be between 1 and 9",
			Code:    "out_of_range",
		})
	}

	if req.Preference != "" && !journey.Preference(req.Preference).Valid() {
		errs = append(errs, FieldError{
			Field:   "preference",
			Message: "must be one of: fastest, cheapest, balanced",
			Code:    "invalid_enum",
		})
	}

	for _, stop := range req.Stops {
		if len(strings.TrimSpace(stop.Location)) < 2 {
			errs = append(errs, FieldError{
				Field:   "stops.location",
				Message: "must be at least 2 characters",
				Code:    "too_short",
			})
		}
		if stop.DurationMinutes < MinStopDuration || stop.DurationMinutes > MaxStopDuration {
			errs = append(errs, FieldError{
				Field:   "stops.duration",
				Message: "must be between 15 and 4320 minutes",
				Code:    "out_of_range",
			})
		}
	}

	return errs
}

// ToJourneyRequest converts the validated request into a planner
// request, applying defaults for optional fields.
func (req *TripSearchRequest) ToJourneyRequest() journey.Request {
	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}

	preference := journey.Preference(req.Preference)
	if preference == "" {
		preference = journey.PreferenceBalanced
	}

	stops := make([]journey.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, journey.Stop{
			Location:        strings.TrimSpace(s.Location),
			DurationMinutes: s.DurationMinutes,
		})
	}

	return journey.Request{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		Date:        req.Date,
		Time:        req.Time,
		Passengers:  passengers,
		Preference:  preference,
		Stops:       stops,
	}
}

// TripSearchResponse is the body of a successful trip search.
type TripSearchResponse struct {
	SearchID    string           `json:"searchId"`
	Origin      string           `json:"origin"`
	Destination string           `json:"destination"`
	Date        string           `json:"date"`
	Preference  string           `json:"preference"`
	Routes      []*journey.Route `json:"routes"`
	Count       int              `json:"count"`
	GeneratedAt Timestamp        `json:"generatedAt"`
}
