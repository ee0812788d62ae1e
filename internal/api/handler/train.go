package handler

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/routestitch/routestitch/internal/api/models"
	"github.com/routestitch/routestitch/internal/api/response"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// Indian train numbers are five digits.
var trainNumberPattern = regexp.MustCompile(`^[0-9]{5}$`)

// TrainStatusSource fetches live status for a train number.
type TrainStatusSource interface {
	GetTrain(ctx context.Context, trainNumber string) (*livetrain.TrainInfo, error)
}

// TrainHandler handles live train status endpoints.
type TrainHandler struct {
	source TrainStatusSource
}

// NewTrainHandler creates a new TrainHandler.
func NewTrainHandler(source TrainStatusSource) *TrainHandler {
	return &TrainHandler{source: source}
}

// GetStatus handles GET /v1/trains/{trainNumber}/status.
func (h *TrainHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	trainNumber := chi.URLParam(r, "trainNumber")
	if !trainNumberPattern.MatchString(trainNumber) {
		response.BadRequest(w, r, "trainNumber must be a 5-digit train number", []models.FieldError{
			{Field: "trainNumber", Message: "must be exactly 5 digits", Code: "invalid_format"},
		})
		return
	}

	info, err := h.source.GetTrain(r.Context(), trainNumber)
	if err != nil {
		switch {
		case errors.Is(err, livetrain.ErrTrainNotFound):
			response.NotFound(w, r, "no live data for train "+trainNumber)
		case errors.Is(err, livetrain.ErrProviderUnavailable):
			response.ServiceUnavailable(w, r, "live train data is temporarily unavailable")
		default:
			response.InternalError(w, r, "failed to fetch train status")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewTrainStatus(info))
}
