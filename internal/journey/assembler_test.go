package journey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/journey"
	"github.com/routestitch/routestitch/internal/livetrain"
)

func testRequest() journey.Request {
	return journey.Request{
		Origin:      "Delhi",
		Destination: "Mumbai",
		Date:        "2026-09-15",
		Passengers:  1,
		Preference:  journey.PreferenceBalanced,
	}
}

func TestAssembleTrain(t *testing.T) {
	a := journey.NewAssembler()
	opt := corridor.TrainOption{
		Name:            "Rajdhani Express",
		Number:          "12951",
		DurationMinutes: 940,
		Cost:            2800,
		Departure:       "16:55",
		Class:           "3A",
	}

	route := a.AssembleTrain(testRequest(), opt)

	require.Len(t, route.Legs, 3)
	access, main, egress := route.Legs[0], route.Legs[1], route.Legs[2]

	// First-mile taxi to the railway station at the requested start time
	assert.Equal(t, journey.ModeTaxi, access.Mode)
	assert.Equal(t, "Delhi", access.From)
	assert.Equal(t, "Delhi Railway Station", access.To)
	assert.Equal(t, journey.DefaultStartTime, access.Departure)
	assert.Equal(t, 30, access.DurationMinutes)
	assert.Equal(t, 350, access.Cost)

	// Main leg keeps its own scheduled departure, arrival wraps midnight
	assert.Equal(t, journey.ModeTrain, main.Mode)
	assert.Equal(t, "16:55", main.Departure)
	assert.Equal(t, "08:35", main.Arrival)
	assert.Equal(t, "12951", main.TrainNumber)
	assert.Equal(t, "15h 40m", main.Duration)
	assert.NotEmpty(t, main.BookingPlatforms)

	// Last-mile taxi departs at the main leg arrival
	assert.Equal(t, journey.ModeTaxi, egress.Mode)
	assert.Equal(t, "Mumbai Railway Station", egress.From)
	assert.Equal(t, "Mumbai", egress.To)
	assert.Equal(t, "08:35", egress.Departure)
	assert.Equal(t, 40, egress.DurationMinutes)
	assert.Equal(t, 400, egress.Cost)

	// Totals are exact leg sums
	assert.Equal(t, 2800+350+400, route.TotalCost)
	assert.Equal(t, 940+30+40, route.TotalDurationMinutes)
	assert.Equal(t, journey.FormatDuration(1010), route.TotalDuration)
	assert.Equal(t, 90, route.Reliability)
	assert.True(t, strings.HasPrefix(route.ID, "rt_"))
	assert.Nil(t, route.Score)
}

func TestAssembleFlight(t *testing.T) {
	a := journey.NewAssembler()
	opt := corridor.FlightOption{
		Airline:         "IndiGo",
		Number:          "6E2343",
		DurationMinutes: 135,
		Cost:            4500,
		Departure:       "08:00",
	}

	route := a.AssembleFlight(testRequest(), opt)

	require.Len(t, route.Legs, 3)
	assert.Equal(t, journey.ModeMetro, route.Legs[0].Mode)
	assert.Equal(t, "Delhi Metro", route.Legs[0].Operator)
	assert.Equal(t, "Delhi Airport", route.Legs[0].To)
	assert.Equal(t, journey.ModeFlight, route.Legs[1].Mode)
	assert.Equal(t, "6E2343", route.Legs[1].FlightNumber)
	assert.Equal(t, journey.ModeTaxi, route.Legs[2].Mode)
	assert.Equal(t, "Airport Taxi", route.Legs[2].Operator)

	assert.Equal(t, 4500+60+900, route.TotalCost)
	assert.Equal(t, 135+45+60, route.TotalDurationMinutes)
	assert.Equal(t, 85, route.Reliability)
}

func TestAssembleBus(t *testing.T) {
	a := journey.NewAssembler()
	opt := corridor.BusOption{
		Operator:        "VRL Travels",
		BusType:         "AC Sleeper",
		DurationMinutes: 1260,
		Cost:            1600,
		Departure:       "18:00",
	}

	route := a.AssembleBus(testRequest(), opt)

	require.Len(t, route.Legs, 3)
	assert.Equal(t, journey.ModeAuto, route.Legs[0].Mode)
	assert.Equal(t, "Delhi Bus Stand", route.Legs[0].To)
	assert.Equal(t, "AC Sleeper", route.Legs[1].BusType)
	assert.Equal(t, journey.ModeAuto, route.Legs[2].Mode)

	assert.Equal(t, 1600+150+200, route.TotalCost)
	assert.Equal(t, 1260+20+30, route.TotalDurationMinutes)
	assert.Equal(t, 70, route.Reliability)
}

func TestAssembleLiveTrain(t *testing.T) {
	a := journey.NewAssembler()
	info := &livetrain.TrainInfo{
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani",
		From:        "New Delhi",
		To:          "Mumbai Central",
		Departure:   "16:55",
		Arrival:     "08:35",
		Duration:    940,
		DistanceKM:  1384,
		Delay:       "On Time",
		UpdatedAt:   "Aug 31, 2026 10:15",
		Stations: []livetrain.StationStatus{
			{StationName: "New Delhi", Timing: "16:55", Delay: "On Time"},
			{StationName: "Kota Jn", Timing: "21:35", Delay: "5 min Late", IsCurrentStation: true},
			{StationName: "Vadodara Jn", Timing: "02:35"},
			{StationName: "Surat", Timing: "03:48"},
			{StationName: "Borivali", Timing: "07:30"},
			{StationName: "Mumbai Central", Timing: "Destination"},
		},
	}

	route := a.AssembleLiveTrain(testRequest(), info)

	require.Len(t, route.Legs, 3)
	main := route.Legs[1]

	// Live path uses real station names, so the access leg connects to
	// the feed's origin station rather than a synthesized terminal
	assert.Equal(t, "New Delhi", route.Legs[0].To)
	assert.Equal(t, "New Delhi", main.From)
	assert.Equal(t, "Mumbai Central", main.To)

	// Fare is estimated from the run distance at the default class
	assert.Equal(t, livetrain.EstimateFare(1384, livetrain.DefaultClass), main.Cost)

	require.NotNil(t, main.Live)
	assert.Equal(t, "Kota Jn", main.Live.CurrentStation)
	assert.Equal(t, "5 min Late", main.Live.DelayStatus)
	assert.Equal(t, []string{"Vadodara Jn", "Surat", "Borivali"}, main.Live.NextStations)
	assert.Equal(t, "Aug 31, 2026 10:15", main.Live.LastUpdated)
}

func TestAssembleLiveTrainArrivalFallback(t *testing.T) {
	a := journey.NewAssembler()
	info := &livetrain.TrainInfo{
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani",
		From:        "New Delhi",
		To:          "Mumbai Central",
		Departure:   "16:55",
		Duration:    940,
	}

	route := a.AssembleLiveTrain(testRequest(), info)

	// No published arrival: derived from departure plus duration
	assert.Equal(t, "08:35", route.Legs[1].Arrival)
}

func TestGenericFallback(t *testing.T) {
	a := journey.NewAssembler()
	req := journey.Request{
		Origin:      "Indore",
		Destination: "Kochi",
		Date:        "2026-09-15",
		Passengers:  2,
		Preference:  journey.PreferenceFastest,
		Time:        "09:00",
	}

	route := a.GenericFallback(req)

	require.Len(t, route.Legs, 1)
	leg := route.Legs[0]
	assert.Equal(t, journey.ModeTrain, leg.Mode)
	assert.Equal(t, "Indore", leg.From)
	assert.Equal(t, "Kochi", leg.To)
	assert.Equal(t, "09:00", leg.Departure)
	assert.Equal(t, "21:00", leg.Arrival)
	assert.Equal(t, 720, leg.DurationMinutes)
	assert.Equal(t, "12h", leg.Duration)
	assert.Equal(t, 2500, leg.Cost)
	assert.Equal(t, "Indian Railways", leg.Operator)

	assert.Equal(t, journey.CategoryRecommended, route.Category)
	assert.Equal(t, 75, route.Reliability)
	assert.Equal(t, 2500, route.TotalCost)
	assert.Equal(t, 720, route.TotalDurationMinutes)
}
