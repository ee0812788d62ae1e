// Package place provides the city catalogue backing trip search inputs.
package place

// City is a searchable place that can appear as a trip origin or
// destination.
type City struct {
	Name    string
	State   string
	Station string // primary railway station
	Airport string // IATA code, empty when the city has no airport
	Aliases []string
}
