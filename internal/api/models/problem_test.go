package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routestitch/routestitch/internal/api/models"
)

func TestNewProblem(t *testing.T) {
	p := models.NewProblem(models.ProblemTypeNotFound, "Not found", http.StatusNotFound, "req_abc")

	assert.Equal(t, models.ProblemTypeNotFound, p.Type)
	assert.Equal(t, "Not found", p.Title)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Equal(t, "req_abc", p.TraceID)
	assert.Empty(t, p.Detail)
}

func TestProblemBuilders(t *testing.T) {
	p := models.NewProblem(models.ProblemTypeValidation, "Validation error", http.StatusBadRequest, "req_abc").
		WithDetail("request body is invalid").
		WithErrors([]models.FieldError{{Field: "origin", Message: "must be at least 2 characters", Code: "too_short"}})

	assert.Equal(t, "request body is invalid", p.Detail)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "origin", p.Errors[0].Field)
}

func TestProblemWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	models.NewBadRequest("req_abc", "request body is invalid", []models.FieldError{
		{Field: "date", Message: "is required", Code: "required"},
	}).Write(rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req_abc", rec.Header().Get("X-Request-Id"))

	var p models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, models.ProblemTypeValidation, p.Type)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "req_abc", p.TraceID)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "date", p.Errors[0].Field)
}

func TestProblemConstructorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		problem *models.Problem
		status  int
		ptype   string
	}{
		{"not found", models.NewNotFound("req_1", "no such train"), http.StatusNotFound, models.ProblemTypeNotFound},
		{"too many requests", models.NewTooManyRequests("req_2", "slow down"), http.StatusTooManyRequests, models.ProblemTypeTooManyRequests},
		{"internal", models.NewInternalError("req_3", "boom"), http.StatusInternalServerError, models.ProblemTypeInternal},
		{"unavailable", models.NewServiceUnavailable("req_4", "provider down"), http.StatusServiceUnavailable, models.ProblemTypeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.problem.Status)
			assert.Equal(t, tt.ptype, tt.problem.Type)
			assert.NotEmpty(t, tt.problem.Detail)
		})
	}
}

func TestProblemOmitsEmptyFields(t *testing.T) {
	p := models.NewProblem(models.ProblemTypeInternal, "Internal server error", http.StatusInternalServerError, "req_abc")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "detail")
	assert.NotContains(t, string(data), "errors")
	assert.NotContains(t, string(data), "instance")
}
