package corridor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository reads the corridor catalogue from PostgreSQL.
// The catalogue is loaded once at startup by the Service; the
// repository itself keeps no state beyond the pool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed corridor repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListAll returns every corridor with its train, bus and flight options.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Corridor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, distance_km
		FROM corridors
		ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("query corridors: %w", err)
	}
	defer rows.Close()

	var corridors []Corridor
	index := make(map[string]int)
	for rows.Next() {
		var c Corridor
		if err := rows.Scan(&c.Key, &c.DistanceKM); err != nil {
			return nil, fmt.Errorf("scan corridor: %w", err)
		}
		index[c.Key] = len(corridors)
		corridors = append(corridors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate corridors: %w", err)
	}

	if err := r.loadTrains(ctx, corridors, index); err != nil {
		return nil, err
	}
	if err := r.loadBuses(ctx, corridors, index); err != nil {
		return nil, err
	}
	if err := r.loadFlights(ctx, corridors, index); err != nil {
		return nil, err
	}

	return corridors, nil
}

func (r *PostgresRepository) loadTrains(ctx context.Context, corridors []Corridor, index map[string]int) error {
	rows, err := r.pool.Query(ctx, `
		SELECT corridor_key, name, number, duration_minutes, cost, departure, class
		FROM corridor_trains
		ORDER BY corridor_key, departure`)
	if err != nil {
		return fmt.Errorf("query corridor trains: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var opt TrainOption
		if err := rows.Scan(&key, &opt.Name, &opt.Number, &opt.DurationMinutes, &opt.Cost, &opt.Departure, &opt.Class); err != nil {
			return fmt.Errorf("scan train option: %w", err)
		}
		if i, ok := index[key]; ok {
			corridors[i].Trains = append(corridors[i].Trains, opt)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadBuses(ctx context.Context, corridors []Corridor, index map[string]int) error {
	rows, err := r.pool.Query(ctx, `
		SELECT corridor_key, operator, bus_type, duration_minutes, cost, departure
		FROM corridor_buses
		ORDER BY corridor_key, departure`)
	if err != nil {
		return fmt.Errorf("query corridor buses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var opt BusOption
		if err := rows.Scan(&key, &opt.Operator, &opt.BusType, &opt.DurationMinutes, &opt.Cost, &opt.Departure); err != nil {
			return fmt.Errorf("scan bus option: %w", err)
		}
		if i, ok := index[key]; ok {
			corridors[i].Buses = append(corridors[i].Buses, opt)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) loadFlights(ctx context.Context, corridors []Corridor, index map[string]int) error {
	rows, err := r.pool.Query(ctx, `
		SELECT corridor_key, airline, number, duration_minutes, cost, departure
		FROM corridor_flights
		ORDER BY corridor_key, departure`)
	if err != nil {
		return fmt.Errorf("query corridor flights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var opt FlightOption
		if err := rows.Scan(&key, &opt.Airline, &opt.Number, &opt.DurationMinutes, &opt.Cost, &opt.Departure); err != nil {
			return fmt.Errorf("scan flight option: %w", err)
		}
		if i, ok := index[key]; ok {
			corridors[i].Flights = append(corridors[i].Flights, opt)
		}
	}
	return rows.Err()
}
