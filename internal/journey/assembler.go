package journey

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// DefaultStartTime is assumed when the request carries no explicit
// departure time.
const DefaultStartTime = "08:00"

// Reliability heuristics by generation path.
const (
	reliabilityTrain   = 90
	reliabilityFlight  = 85
	reliabilityBus     = 70
	reliabilityGeneric = 75
)

// connectorSpec describes a synthesized first/last-mile leg for one
// main-leg mode. Durations and costs are fixed nominal values; the
// terminal suffix names the transit hub ("Delhi Railway Station").
type connectorSpec struct {
	mode            TransportMode
	durationMinutes int
	cost            int
	operator        string // "%s" expands to the city name
	terminal        string
}

var accessConnectors = map[TransportMode]connectorSpec{
	ModeTrain:  {mode: ModeTaxi, durationMinutes: 30, cost: 350, operator: "Uber/Ola", terminal: "Railway Station"},
	ModeFlight: {mode: ModeMetro, durationMinutes: 45, cost: 60, operator: "%s Metro", terminal: "Airport"},
	ModeBus:    {mode: ModeAuto, durationMinutes: 20, cost: 150, operator: "Auto Rickshaw", terminal: "Bus Stand"},
}

var egressConnectors = map[TransportMode]connectorSpec{
	ModeTrain:  {mode: ModeTaxi, durationMinutes: 40, cost: 400, operator: "Uber/Ola", terminal: "Railway Station"},
	ModeFlight: {mode: ModeTaxi, durationMinutes: 60, cost: 900, operator: "Airport Taxi", terminal: "Airport"},
	ModeBus:    {mode: ModeAuto, durationMinutes: 30, cost: 200, operator: "Auto Rickshaw", terminal: "Bus Stand"},
}

// Assembler converts candidate transport options into complete
// door-to-door routes. It is stateless and safe for concurrent use.
type Assembler struct{}

// NewAssembler creates a route assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// startTime resolves the departure time for connector synthesis.
func startTime(req Request) string {
	if req.Time != "" {
		return req.Time
	}
	return DefaultStartTime
}

// AssembleTrain builds a door-to-door route around a scheduled train
// candidate from the corridor template.
func (a *Assembler) AssembleTrain(req Request, opt corridor.TrainOption) *Route {
	main := Leg{
		Mode:             ModeTrain,
		From:             req.Origin,
		To:               req.Destination,
		Departure:        opt.Departure,
		Arrival:          AddMinutes(opt.Departure, opt.DurationMinutes),
		Duration:         FormatDuration(opt.DurationMinutes),
		DurationMinutes:  opt.DurationMinutes,
		Cost:             opt.Cost,
		Operator:         opt.Name,
		TrainNumber:      opt.Number,
		BookingPlatforms: bookingPlatforms(ModeTrain, req.Origin, req.Destination),
	}
	return a.assemble(req, main)
}

// AssembleLiveTrain builds a route around a live-enriched train. The
// live summary annotates the main leg for display only; schedule data
// from the feed supplies timing, and the fare is estimated from the
// run distance.
func (a *Assembler) AssembleLiveTrain(req Request, info *livetrain.TrainInfo) *Route {
	arrival := info.Arrival
	if arrival == "" {
		arrival = AddMinutes(info.Departure, info.Duration)
	}

	main := Leg{
		Mode:             ModeTrain,
		From:             info.From,
		To:               info.To,
		Departure:        info.Departure,
		Arrival:          arrival,
		Duration:         FormatDuration(info.Duration),
		DurationMinutes:  info.Duration,
		Cost:             livetrain.EstimateFare(info.DistanceKM, livetrain.DefaultClass),
		Operator:         info.TrainName,
		TrainNumber:      info.TrainNumber,
		BookingPlatforms: bookingPlatforms(ModeTrain, req.Origin, req.Destination),
		Live:             toLiveStatus(info.Summarize()),
	}
	return a.assemble(req, main)
}

// AssembleBus builds a door-to-door route around a scheduled bus
// candidate.
func (a *Assembler) AssembleBus(req Request, opt corridor.BusOption) *Route {
	main := Leg{
		Mode:             ModeBus,
		From:             req.Origin,
		To:               req.Destination,
		Departure:        opt.Departure,
		Arrival:          AddMinutes(opt.Departure, opt.DurationMinutes),
		Duration:         FormatDuration(opt.DurationMinutes),
		DurationMinutes:  opt.DurationMinutes,
		Cost:             opt.Cost,
		Operator:         opt.Operator,
		BusType:          opt.BusType,
		BookingPlatforms: bookingPlatforms(ModeBus, req.Origin, req.Destination),
	}
	return a.assemble(req, main)
}

// AssembleFlight builds a door-to-door route around a scheduled flight
// candidate.
func (a *Assembler) AssembleFlight(req Request, opt corridor.FlightOption) *Route {
	main := Leg{
		Mode:             ModeFlight,
		From:             req.Origin,
		To:               req.Destination,
		Departure:        opt.Departure,
		Arrival:          AddMinutes(opt.Departure, opt.DurationMinutes),
		Duration:         FormatDuration(opt.DurationMinutes),
		DurationMinutes:  opt.DurationMinutes,
		Cost:             opt.Cost,
		Operator:         opt.Airline,
		FlightNumber:     opt.Number,
		BookingPlatforms: bookingPlatforms(ModeFlight, req.Origin, req.Destination),
	}
	return a.assemble(req, main)
}

// GenericFallback builds the single long-haul route used when no
// corridor is known for the pair: one representative 12h train leg,
// no connectors, category Recommended.
func (a *Assembler) GenericFallback(req Request) *Route {
	start := startTime(req)
	leg := Leg{
		Mode:            ModeTrain,
		From:            req.Origin,
		To:              req.Destination,
		Departure:       start,
		Arrival:         AddMinutes(start, 720),
		Duration:        FormatDuration(720),
		DurationMinutes: 720,
		Cost:            2500,
		Operator:        "Indian Railways",
	}

	route := newRoute([]Leg{leg}, reliabilityGeneric)
	route.Category = CategoryRecommended
	return route
}

// assemble wraps a main leg with its first-mile and last-mile
// connectors and aggregates the totals.
//
// The connector departs at the requested start time while the main leg
// keeps its own scheduled departure; the two are independent and the
// connector arrival is not required to precede the scheduled departure.
func (a *Assembler) assemble(req Request, main Leg) *Route {
	start := startTime(req)
	access := accessConnectors[main.Mode]
	egress := egressConnectors[main.Mode]

	accessTo := main.From
	if accessTo == req.Origin {
		accessTo = terminalName(req.Origin, access.terminal)
	}
	egressFrom := main.To
	if egressFrom == req.Destination {
		egressFrom = terminalName(req.Destination, egress.terminal)
	}

	legs := []Leg{
		{
			Mode:            access.mode,
			From:            req.Origin,
			To:              accessTo,
			Departure:       start,
			Arrival:         AddMinutes(start, access.durationMinutes),
			Duration:        FormatDuration(access.durationMinutes),
			DurationMinutes: access.durationMinutes,
			Cost:            access.cost,
			Operator:        connectorOperator(access.operator, req.Origin),
		},
		main,
		{
			Mode:            egress.mode,
			From:            egressFrom,
			To:              req.Destination,
			Departure:       main.Arrival,
			Arrival:         AddMinutes(main.Arrival, egress.durationMinutes),
			Duration:        FormatDuration(egress.durationMinutes),
			DurationMinutes: egress.durationMinutes,
			Cost:            egress.cost,
			Operator:        connectorOperator(egress.operator, req.Destination),
		},
	}

	return newRoute(legs, mainLegReliability(main))
}

// newRoute aggregates legs into a route. Totals are the exact sums of
// leg costs and leg durations.
func newRoute(legs []Leg, reliability int) *Route {
	totalCost := 0
	totalMinutes := 0
	for _, leg := range legs {
		totalCost += leg.Cost
		totalMinutes += leg.DurationMinutes
	}

	return &Route{
		ID:                   "rt_" + uuid.New().String()[:12],
		TotalCost:            totalCost,
		TotalDuration:        FormatDuration(totalMinutes),
		TotalDurationMinutes: totalMinutes,
		Reliability:          reliability,
		Legs:                 legs,
	}
}

func mainLegReliability(main Leg) int {
	switch main.Mode {
	case ModeFlight:
		return reliabilityFlight
	case ModeBus:
		return reliabilityBus
	default:
		return reliabilityTrain
	}
}

func terminalName(city, terminal string) string {
	return fmt.Sprintf("%s %s", city, terminal)
}

func connectorOperator(operator, city string) string {
	if strings.Contains(operator, "%s") {
		return fmt.Sprintf(operator, city)
	}
	return operator
}

func toLiveStatus(s *livetrain.Summary) *LiveStatus {
	if s == nil {
		return nil
	}
	next := make([]string, 0, len(s.NextStations))
	for _, st := range s.NextStations {
		next = append(next, st.StationName)
	}
	return &LiveStatus{
		CurrentStation: s.CurrentStation,
		DelayStatus:    s.DelayStatus,
		LastUpdated:    s.LastUpdated,
		NextStations:   next,
	}
}
