package journey

import "sort"

// Weights is the fixed scoring weight triple for one preference. The
// three weights sum to 1.0.
type Weights struct {
	Time        float64
	Cost        float64
	Reliability float64
}

// preferenceWeights are the ranking presets, built once and read-only.
var preferenceWeights = map[Preference]Weights{
	PreferenceFastest:  {Time: 0.7, Cost: 0.2, Reliability: 0.1},
	PreferenceCheapest: {Time: 0.2, Cost: 0.7, Reliability: 0.1},
	PreferenceBalanced: {Time: 0.4, Cost: 0.4, Reliability: 0.2},
}

// WeightsFor returns the weight preset for a preference, falling back
// to balanced for anything unknown.
func WeightsFor(p Preference) Weights {
	if w, ok := preferenceWeights[p]; ok {
		return w
	}
	return preferenceWeights[PreferenceBalanced]
}

// Rank scores the complete candidate set against the preference and
// returns it sorted by descending composite score. Normalization needs
// the global min/max, so ranking runs once over the full batch, never
// incrementally.
//
// Category assignment runs in a fixed order (Fastest, then Cheapest,
// then Best Value) where a later match overwrites an earlier one.
// A route can conceptually deserve several badges; the single-badge
// clobbering is preserved for compatibility with the established
// result shape.
func Rank(routes []*Route, preference Preference) []*Route {
	if len(routes) == 0 {
		return routes
	}

	w := WeightsFor(preference)

	minCost, maxCost := costRange(routes)
	minTime, maxTime := durationRange(routes)

	for _, route := range routes {
		// min==max would divide by zero; a trivial range means every
		// candidate gets full marks.
		costScore := 100.0
		if maxCost != minCost {
			costScore = 100 * (1 - float64(route.TotalCost-minCost)/float64(maxCost-minCost))
		}
		timeScore := 100.0
		if maxTime != minTime {
			timeScore = 100 * (1 - float64(route.TotalDurationMinutes-minTime)/float64(maxTime-minTime))
		}
		reliabilityScore := float64(route.Reliability)

		score := timeScore*w.Time + costScore*w.Cost + reliabilityScore*w.Reliability
		route.Score = &score

		if route.TotalDurationMinutes == minTime {
			route.Category = CategoryFastest
		}
		if route.TotalCost == minCost {
			route.Category = CategoryCheapest
		}
		if score > 80 {
			route.Category = CategoryBestValue
		}
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return scoreOf(routes[i]) > scoreOf(routes[j])
	})

	return routes
}

func scoreOf(r *Route) float64 {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

func costRange(routes []*Route) (minCost, maxCost int) {
	minCost, maxCost = routes[0].TotalCost, routes[0].TotalCost
	for _, r := range routes[1:] {
		if r.TotalCost < minCost {
			minCost = r.TotalCost
		}
		if r.TotalCost > maxCost {
			maxCost = r.TotalCost
		}
	}
	return minCost, maxCost
}

func durationRange(routes []*Route) (minTime, maxTime int) {
	minTime, maxTime = routes[0].TotalDurationMinutes, routes[0].TotalDurationMinutes
	for _, r := range routes[1:] {
		if r.TotalDurationMinutes < minTime {
			minTime = r.TotalDurationMinutes
		}
		if r.TotalDurationMinutes > maxTime {
			maxTime = r.TotalDurationMinutes
		}
	}
	return minTime, maxTime
}
