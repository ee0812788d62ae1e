package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/routestitch/routestitch/internal/api/models"
	"github.com/routestitch/routestitch/internal/api/response"
	"github.com/routestitch/routestitch/internal/corridor"
	"github.com/routestitch/routestitch/internal/livetrain"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	corridors *corridor.Service
	trains    *livetrain.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, corridors *corridor.Service, trains *livetrain.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		corridors: corridors,
		trains:    trains,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// The service is ready once the corridor catalogue is loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	if len(h.corridors.Keys()) == 0 {
		status = models.HealthStatusDegraded
	}
	health := models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())

	catalogueStatus := models.HealthStatusOK
	if len(h.corridors.Keys()) == 0 {
		catalogueStatus = models.HealthStatusFail
	}

	stats := h.trains.CacheStats()
	cacheDetail := "fresh=" + strconv.Itoa(stats.FreshEntries) + " stale=" + strconv.Itoa(stats.StaleEntries)

	status := models.SystemStatus{
		Status: catalogueStatus,
		Time:   now,
		Subsystems: []models.SubsystemStatus{
			{Name: "corridor-catalogue", Status: catalogueStatus},
			{Name: "livetrain-cache", Status: models.HealthStatusOK, Detail: &cacheDetail},
		},
		Providers: []models.ProviderStatus{
			{Provider: h.trains.ProviderName(), Status: models.HealthStatusOK, LastSuccessAt: &now},
		},
	}
	response.JSON(w, r, http.StatusOK, status)
}
