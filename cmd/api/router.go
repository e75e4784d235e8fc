package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/freight-rates/backend/internal/config"
	"github.com/pkordes/freight-rates/backend/internal/handler"
	"github.com/pkordes/freight-rates/backend/internal/metrics"
	"github.com/pkordes/freight-rates/backend/internal/middleware"
)

// maxBodyBytes caps request bodies. The API is read-only, so anything
// larger than a few KiB is not a legitimate request.
const maxBodyBytes = 4 << 10

// newRouter builds the full middleware chain around the API routes and /metrics.
//
// Order: RequestID → RealIP → Logger → Recoverer → Metrics → CORS →
// RateLimit → MaxBodySize. Rejections from the later stages are still
// logged and counted.
func newRouter(cfg config.Config, logger *slog.Logger, m *metrics.Metrics, api *handler.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/", handler.Handler(api))
	return r
}
