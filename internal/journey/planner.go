package journey

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// LiveTrainSource is the enrichment collaborator: best-effort live
// schedule/position data per train number. Any error means "no live
// data" and never fails route generation.
type LiveTrainSource interface {
	GetTrain(ctx context.Context, trainNumber string) (*livetrain.TrainInfo, error)
}

// PlannerConfig holds configuration for the planner.
type PlannerConfig struct {
	// Corridors resolves origin/destination pairs to option templates.
	Corridors *corridor.Service

	// LiveTrains is the optional live train enrichment source.
	// When nil, train routes are built from template data only.
	LiveTrains LiveTrainSource

	// Logger for planner operations.
	Logger zerolog.Logger

	// EnrichTimeout bounds each live train fetch (default: 5 seconds).
	// A slow enrichment call must never hold a search open.
	EnrichTimeout time.Duration
}

// Planner generates and ranks complete routes for a trip request. It
// is the entry point of the route generation engine.
type Planner struct {
	corridors     *corridor.Service
	liveTrains    LiveTrainSource
	assembler     *Assembler
	logger        zerolog.Logger
	enrichTimeout time.Duration
}

// NewPlanner creates a new planner.
func NewPlanner(cfg PlannerConfig) *Planner {
	enrichTimeout := cfg.EnrichTimeout
	if enrichTimeout == 0 {
		enrichTimeout = 5 * time.Second
	}

	return &Planner{
		corridors:     cfg.Corridors,
		liveTrains:    cfg.LiveTrains,
		assembler:     NewAssembler(),
		logger:        cfg.Logger,
		enrichTimeout: enrichTimeout,
	}
}

// Plan generates the ranked route list for a validated request.
//
// An unknown corridor is not an error: it yields a single generic
// long-haul route. A matched corridor with no candidates yields an
// empty list. Live data failures degrade silently to template data.
func (p *Planner) Plan(ctx context.Context, req Request) ([]*Route, error) {
	c, ok := p.corridors.Lookup(req.Origin, req.Destination)
	if !ok {
		p.logger.Debug().
			Str("origin", req.Origin).
			Str("destination", req.Destination).
			Msg("no corridor for pair, using generic fallback route")
		return []*Route{p.assembler.GenericFallback(req)}, nil
	}

	routes := make([]*Route, 0, len(c.Trains)+len(c.Buses)+len(c.Flights))

	if len(c.Trains) > 0 {
		live := p.fetchLiveTrains(ctx, c.Trains)
		if len(live) > 0 {
			p.logger.Debug().
				Int("live_trains", len(live)).
				Str("corridor", c.Key).
				Msg("assembling routes from live train data")
			for _, info := range live {
				routes = append(routes, p.assembler.AssembleLiveTrain(req, info))
			}
		} else {
			for _, opt := range c.Trains {
				routes = append(routes, p.assembler.AssembleTrain(req, opt))
			}
		}
	}

	for _, opt := range c.Flights {
		routes = append(routes, p.assembler.AssembleFlight(req, opt))
	}
	for _, opt := range c.Buses {
		routes = append(routes, p.assembler.AssembleBus(req, opt))
	}

	if len(routes) == 0 {
		return routes, nil
	}

	return Rank(routes, req.Preference), nil
}

// fetchLiveTrains fetches live data for every train candidate
// concurrently, each call bounded by its own timeout. Calls are
// independent: one failure or timeout neither blocks nor fails the
// others. Successful results come back in candidate order.
func (p *Planner) fetchLiveTrains(ctx context.Context, candidates []corridor.TrainOption) []*livetrain.TrainInfo {
	if p.liveTrains == nil {
		return nil
	}

	results := make([]*livetrain.TrainInfo, len(candidates))

	var wg sync.WaitGroup
	for i, opt := range candidates {
		wg.Add(1)
		go func(i int, trainNumber string) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, p.enrichTimeout)
			defer cancel()

			info, err := p.liveTrains.GetTrain(callCtx, trainNumber)
			if err != nil {
				p.logger.Debug().Err(err).
					Str("train_number", trainNumber).
					Msg("live train enrichment unavailable")
				return
			}
			results[i] = info
		}(i, opt.Number)
	}
	wg.Wait()

	live := make([]*livetrain.TrainInfo, 0, len(candidates))
	for _, info := range results {
		if info != nil {
			live = append(live, info)
		}
	}
	return live
}
