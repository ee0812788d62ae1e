package models

import "github.com/routestitch/routestitch/internal/place"

// Place is one city result from place search.
type Place struct {
	Name    string   `json:"name"`
	State   string   `json:"state"`
	Station string   `json:"station"`
	Airport string   `json:"airport,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// PlaceList is the response of GET /v1/places:search.
type PlaceList struct {
	Items []Place `json:"items"`
	Count int     `json:"count"`
}

// NewPlaceList builds the API view of place search results.
func NewPlaceList(cities []place.City) PlaceList {
	items := make([]Place, 0, len(cities))
	for _, c := range cities {
		items = append(items, Place{
			Name:    c.Name,
			State:   c.State,
			Station: c.Station,
			Airport: c.Airport,
			Aliases: c.Aliases,
		})
	}
	return PlaceList{Items: items, Count: len(items)}
}
