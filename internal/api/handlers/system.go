package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Database string            `json:"database"`
	Dataset  model.DatasetInfo `json:"dataset"`
	Error    string            `json:"error,omitempty"`
}

// Health checks the health of the system, database connectivity and the loaded rate table.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
// Error: 503 Service Unavailable if the database is unreachable or no rates are loaded
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	dataset := h.systemService.Dataset(r.Context())

	if err := h.systemService.CheckHealth(r.Context()); err != nil {
		database := "disconnected"
		if errors.Is(err, apperrors.ErrNoRateData) {
			database = "connected"
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: database,
			Dataset:  dataset,
			Error:    err.Error(),
		})
		return
	}

	// System is healthy
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Dataset:  dataset,
	})
}

// Version handles GET requests to retrieve version information and feature availability.
// Returns the application version, database version, available features, and any pending migrations.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with model.VersionInfo
// Error: 500 Internal Server Error if version check fails
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	info, err := h.systemService.CheckVersion()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetVersionInfo.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, info)
}
