package handler

import (
	"net/http"

	"github.com/routestitch/routestitch/internal/api/models"
	"github.com/routestitch/routestitch/internal/api/response"
	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/journey"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct {
	corridors *corridor.Service
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(corridors *corridor.Service) *MetadataHandler {
	return &MetadataHandler{corridors: corridors}
}

// ListCorridors handles GET /v1/metadata/corridors - list supported corridors.
func (h *MetadataHandler) ListCorridors(w http.ResponseWriter, r *http.Request) {
	corridors := h.corridors.All()
	items := make([]models.CorridorSummary, 0, len(corridors))
	for _, c := range corridors {
		items = append(items, models.CorridorSummary{
			Key:        c.Key,
			DistanceKM: c.DistanceKM,
			Trains:     len(c.Trains),
			Buses:      len(c.Buses),
			Flights:    len(c.Flights),
		})
	}
	response.JSON(w, r, http.StatusOK, models.CorridorList{Items: items, Count: len(items)})
}

// GetEnums handles GET /v1/metadata/enums - get enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		Modes: []string{
			string(journey.ModeTrain),
			string(journey.ModeBus),
			string(journey.ModeFlight),
			string(journey.ModeMetro),
			string(journey.ModeTaxi),
			string(journey.ModeAuto),
			string(journey.ModeWalk),
		},
		Preferences: []string{
			string(journey.PreferenceFastest),
			string(journey.PreferenceCheapest),
			string(journey.PreferenceBalanced),
		},
		Categories: []string{
			string(journey.CategoryFastest),
			string(journey.CategoryCheapest),
			string(journey.CategoryBestValue),
			string(journey.CategoryRecommended),
		},
		TrainClasses: livetrain.Classes(),
	}
	response.JSON(w, r, http.StatusOK, enums)
}
