package livetrain

import (
	"math"
	"sort"
)

// Per-kilometre fare rates by seat class.
var classRates = map[string]float64{
	"SL": 1.5, // Sleeper
	"3A": 3.0, // 3rd AC
	"2A": 4.5, // 2nd AC
	"CC": 2.0, // Chair Car
}

// DefaultClass is the seat class assumed when none is given.
const DefaultClass = "3A"

// Classes returns the known seat classes in sorted order.
func Classes() []string {
	classes := make([]string, 0, len(classRates))
	for class := range classRates {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// EstimateFare gives a rough fare in display currency units for a
// journey of the given distance and seat class. Unknown classes fall
// back to the default class rate.
func EstimateFare(distanceKM int, class string) int {
	rate, ok := classRates[class]
	if !ok {
		rate = classRates[DefaultClass]
	}
	return int(math.Round(float64(distanceKM) * rate))
}
