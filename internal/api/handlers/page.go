package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.gohtml"))

// pageData is the view model of the dashboard page.
type pageData struct {
	Title             string
	Currencies        []string
	DefaultCurrency   string
	ReferenceCurrency string
}

// PageHandler serves the single-page dashboard.
type PageHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(dashboardService *service.DashboardService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Dashboard renders the page with the currency dropdown. The page fetches
// /api/dashboard/{currency} on load and on every dropdown change.
//
// Endpoint: GET /
// Response: 200 OK with text/html
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	listing := h.dashboardService.Currencies()

	data := pageData{
		Title:             "Currency Exchange Rate Analysis Dashboard",
		Currencies:        listing.Currencies,
		DefaultCurrency:   listing.DefaultCurrency,
		ReferenceCurrency: listing.ReferenceCurrency,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render dashboard page", zap.Error(err))
		response.RespondError(w, http.StatusInternalServerError, "failed to render page", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write dashboard page", zap.Error(err))
	}
}
