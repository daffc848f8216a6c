package http

import (
	"net/http"

	"vivid-analytics/internal/analytics"
	"vivid-analytics/internal/shared/loggers"
	"vivid-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analyticsService analytics.AnalyticsService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	metricQueryHandler := NewMetricQueryHandler(analyticsService)

	// Routes
	router.Post("/v1/metrics/query", errorHandlingAdapter(metricQueryHandler))
	router.Get("/healthz", healthzHandler)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
