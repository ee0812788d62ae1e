package models

// Enums represents the enum values used by the API.
type Enums struct {
	Modes        []string `json:"modes"`
	Preferences  []string `json:"preferences"`
	Categories   []string `json:"categories"`
	TrainClasses []string `json:"trainClasses"`
}

// CorridorSummary describes one supported corridor.
type CorridorSummary struct {
	Key        string `json:"key"`
	DistanceKM int    `json:"distanceKm"`
	Trains     int    `json:"trains"`
	Buses      int    `json:"buses"`
	Flights    int    `json:"flights"`
}

// CorridorList is the response of GET /v1/metadata/corridors.
type CorridorList struct {
	Items []CorridorSummary `json:"items"`
	Count int               `json:"count"`
}
