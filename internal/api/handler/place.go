package handler

import (
	"net/http"
	"strconv"

	"github.com/routestitch/routestitch/internal/api/models"
	"github.com/routestitch/routestitch/internal/api/response"
	"github.com/routestitch/routestitch/internal/place"
)

// PlaceHandler handles place search endpoints.
type PlaceHandler struct {
	places *place.Service
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(places *place.Service) *PlaceHandler {
	return &PlaceHandler{places: places}
}

// SearchPlaces handles GET /v1/places:search?q=...&limit=...
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) < 1 {
		response.BadRequest(w, r, "query parameter q is required", []models.FieldError{
			{Field: "q", Message: "is required", Code: "required"},
		})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			response.BadRequest(w, r, "limit must be an integer between 1 and 50", []models.FieldError{
				{Field: "limit", Message: "must be between 1 and 50", Code: "out_of_range"},
			})
			return
		}
		limit = parsed
	}

	cities := h.places.Search(query, limit)
	response.JSON(w, r, http.StatusOK, models.NewPlaceList(cities))
}
