// Package handler provides HTTP handlers for the RouteStitch API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/routestitch/routestitch/internal/api/models"
	"github.com/routestitch/routestitch/internal/api/response"
	"github.com/routestitch/routestitch/internal/journey"
)

// TripPlanner generates ranked routes for a trip request.
type TripPlanner interface {
	Plan(ctx context.Context, req journey.Request) ([]*journey.Route, error)
}

// TripHandler handles trip search endpoints.
type TripHandler struct {
	planner TripPlanner
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(planner TripPlanner) *TripHandler {
	return &TripHandler{planner: planner}
}

// SearchTrips handles POST /v1/trips:search - generate and rank routes.
func (h *TripHandler) SearchTrips(w http.ResponseWriter, r *http.Request) {
	var input models.TripSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		response.BadRequest(w, r, "request validation failed", errs)
		return
	}

	req := input.ToJourneyRequest()
	routes, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		response.InternalError(w, r, "route generation failed")
		return
	}

	result := models.TripSearchResponse{
		SearchID:    "srch_" + uuid.New().String()[:12],
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Preference:  string(req.Preference),
		Routes:      routes,
		Count:       len(routes),
		GeneratedAt: models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, result)
}
