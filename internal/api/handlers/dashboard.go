package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/request"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/validation"
)

// DashboardHandler handles HTTP requests for the currency dashboard.
// It parses and validates the selection and delegates to the DashboardService.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Currencies handles GET requests for the dropdown contents.
//
// Endpoint: GET /api/currency
// Response: 200 OK with model.CurrencyListing
func (h *DashboardHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.dashboardService.Currencies())
}

// Dashboard handles GET requests for the chart and extrema of one currency.
//
// Endpoint: GET /api/dashboard/{currency}?reference={reference}
// Response: 200 OK with model.DashboardView
// Error: 400 Bad Request if the currency or reference is malformed
// Error: 404 Not Found if the currency or reference is not a rate table column
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	req := request.ParseDashboardRequest(r)
	if err := validation.ValidateDashboardRequest(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	view, err := h.dashboardService.View(req.Reference, req.Currency)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToBuildDashboard.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}

// Series handles GET requests for the normalized series of one currency.
//
// Endpoint: GET /api/dashboard/{currency}/series?reference={reference}
// Response: 200 OK with model.NormalizedSeries
// Error: 400 Bad Request if the currency or reference is malformed
// Error: 404 Not Found if the currency or reference is not a rate table column
func (h *DashboardHandler) Series(w http.ResponseWriter, r *http.Request) {
	req := request.ParseDashboardRequest(r)
	if err := validation.ValidateDashboardRequest(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	series, err := h.dashboardService.Series(req.Reference, req.Currency)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToBuildDashboard.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}

// Export handles GET requests to download the normalized series of one currency.
// The file is rendered in memory first so failures still produce a JSON error.
//
// Endpoint: GET /api/dashboard/{currency}/export?format=csv|xlsx|pdf&reference={reference}
// Response: 200 OK with the file as an attachment
// Error: 400 Bad Request if the format, currency or reference is malformed
// Error: 404 Not Found if the currency or reference is not a rate table column
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	req := request.ParseExportRequest(r)
	format, err := validation.ValidateExportRequest(req)
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	reference := req.Reference
	if reference == "" {
		reference = h.dashboardService.Reference()
	}

	var buf bytes.Buffer
	if err := h.dashboardService.ExportSeries(&buf, reference, req.Currency, format); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToExportSeries.Error())
		return
	}

	filename := fmt.Sprintf("%s_in_%s%s", req.Currency, reference, format.Extension())
	response.RespondAttachment(w, format.ContentType(), filename, buf.Bytes())
}
