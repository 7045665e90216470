package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/adapter/http/handler"
	"github.com/iho/txdash/internal/adapter/http/middleware"
	"github.com/iho/txdash/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DashboardHandler    *handler.DashboardHandler
	NotificationHandler *handler.NotificationHandler
	ReportHandler       *handler.ReportHandler
	HealthHandler       *handler.HealthHandler
	Logger              zerolog.Logger
	Metrics             *metrics.Metrics
	MetricsHandler      http.Handler
	RateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Dashboard snapshot and pagination
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", cfg.DashboardHandler.Get)
			r.Post("/refresh", cfg.DashboardHandler.Refresh)
			r.Put("/page", cfg.DashboardHandler.ChangePage)
			r.Put("/page-size", cfg.DashboardHandler.ChangePageSize)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.DashboardHandler.Create)
			r.Put("/{id}", cfg.DashboardHandler.Edit)
			r.Delete("/{id}", cfg.DashboardHandler.Delete)
		})

		// Selection
		r.Route("/selection", func(r chi.Router) {
			r.Put("/", cfg.DashboardHandler.SelectAll)
			r.Delete("/", cfg.DashboardHandler.DeleteSelected)
			r.Post("/{id}/toggle", cfg.DashboardHandler.ToggleSelect)
		})

		r.Post("/uploads", cfg.DashboardHandler.Upload)

		// Form
		r.Route("/form", func(r chi.Router) {
			r.Put("/", cfg.DashboardHandler.OpenForm)
			r.Delete("/", cfg.DashboardHandler.CloseForm)
		})

		r.Get("/notifications", cfg.NotificationHandler.List)
		r.Get("/reports/{name}", cfg.ReportHandler.Download)
	})

	return r
}
