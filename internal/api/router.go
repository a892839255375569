package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/config"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	dashboardService *service.DashboardService,
	cfg *config.Config,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found", r.URL.Path)
	})

	pageHandler := handlers.NewPageHandler(dashboardService, logger)
	r.Get("/", pageHandler.Dashboard)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		dashboardHandler := handlers.NewDashboardHandler(dashboardService)
		r.Get("/currency", dashboardHandler.Currencies)

		r.Route("/dashboard/{currency}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateCurrencyMiddleware)
			r.Get("/", dashboardHandler.Dashboard)
			r.Get("/series", dashboardHandler.Series)
			r.Get("/export", dashboardHandler.Export)
		})
	})

	return r
}
