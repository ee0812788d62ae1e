package corridor

import "context"

// InMemoryRepository serves corridors from a static slice. Used as the
// default catalogue when no database is configured, and in tests.
type InMemoryRepository struct {
	corridors []Corridor
}

// NewInMemoryRepository creates a repository over the given corridors.
func NewInMemoryRepository(corridors []Corridor) *InMemoryRepository {
	return &InMemoryRepository{corridors: corridors}
}

// ListAll returns every corridor template.
func (r *InMemoryRepository) ListAll(_ context.Context) ([]Corridor, error) {
	return r.corridors, nil
}

// DefaultCatalogue returns the built-in corridor templates for major
// Indian intercity corridors.
func DefaultCatalogue() []Corridor {
	return []Corridor{
		{
			Key:        "delhi-mumbai",
			DistanceKM: 1400,
			Trains: []TrainOption{
				{Name: "Rajdhani Express", Number: "12951", DurationMinutes: 940, Cost: 2800, Departure: "16:55", Class: "3A"},
				{Name: "August Kranti Rajdhani", Number: "12953", DurationMinutes: 925, Cost: 3200, Departure: "16:35", Class: "2A"},
				{Name: "Mumbai Rajdhani", Number: "12955", DurationMinutes: 960, Cost: 2650, Departure: "16:00", Class: "3A"},
			},
			Buses: []BusOption{
				{Operator: "VRL Travels", BusType: "AC Sleeper", DurationMinutes: 1260, Cost: 1600, Departure: "18:00"},
				{Operator: "Sharma Travels", BusType: "Non-AC Sleeper", DurationMinutes: 1320, Cost: 1400, Departure: "19:30"},
			},
			Flights: []FlightOption{
				{Airline: "IndiGo", Number: "6E2343", DurationMinutes: 135, Cost: 4500, Departure: "08:00"},
				{Airline: "Air India", Number: "AI660", DurationMinutes: 140, Cost: 5200, Departure: "10:30"},
				{Airline: "Vistara", Number: "UK995", DurationMinutes: 135, Cost: 6500, Departure: "14:00"},
			},
		},
		{
			Key:        "bangalore-hyderabad",
			DistanceKM: 570,
			Trains: []TrainOption{
				{Name: "Kacheguda Express", Number: "12785", DurationMinutes: 660, Cost: 850, Departure: "21:15", Class: "Sleeper"},
			},
			Buses: []BusOption{
				{Operator: "KSRTC Airavat", BusType: "AC Sleeper", DurationMinutes: 600, Cost: 900, Departure: "22:00"},
				{Operator: "Orange Travels", BusType: "AC Semi-Sleeper", DurationMinutes: 630, Cost: 750, Departure: "23:30"},
			},
			Flights: []FlightOption{
				{Airline: "IndiGo", Number: "6E6251", DurationMinutes: 60, Cost: 3200, Departure: "07:30"},
			},
		},
		{
			Key:        "delhi-bangalore",
			DistanceKM: 2150,
			Trains: []TrainOption{
				{Name: "Karnataka Express", Number: "12627", DurationMinutes: 2040, Cost: 2200, Departure: "19:30", Class: "3A"},
			},
			Flights: []FlightOption{
				{Airline: "IndiGo", Number: "6E6115", DurationMinutes: 165, Cost: 5500, Departure: "06:00"},
				{Airline: "Air India", Number: "AI804", DurationMinutes: 170, Cost: 6200, Departure: "09:15"},
			},
		},
		{
			Key:        "chennai-bangalore",
			DistanceKM: 350,
			Trains: []TrainOption{
				{Name: "Shatabdi Express", Number: "12007", DurationMinutes: 300, Cost: 680, Departure: "06:00", Class: "CC"},
			},
			Buses: []BusOption{
				{Operator: "KSRTC Airavat", BusType: "AC Sleeper", DurationMinutes: 420, Cost: 550, Departure: "23:00"},
			},
		},
		{
			Key:        "pune-mumbai",
			DistanceKM: 150,
			Trains: []TrainOption{
				{Name: "Deccan Queen", Number: "12123", DurationMinutes: 210, Cost: 250, Departure: "07:15", Class: "2S"},
			},
			Buses: []BusOption{
				{Operator: "MSRTC Shivneri", BusType: "AC", DurationMinutes: 180, Cost: 350, Departure: "06:30"},
			},
		},
	}
}
