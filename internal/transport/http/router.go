// Package httptransport assembles the dashboard's HTTP surface: the middleware
// chain, operational endpoints and the page routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loandesk/internal/platform/metrics"
	"loandesk/internal/platform/middleware"
	"loandesk/pkg/platform/httputil"
)

// Registrar mounts a group of routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// RouterConfig carries what the router needs beyond the page handlers.
type RouterConfig struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Redis is nil when toasts are kept in memory.
	Redis HealthChecker
}

// NewRouter wires the middleware chain, /healthz, /metrics and every registrar.
func NewRouter(cfg RouterConfig, registrars ...Registrar) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.LatencyMiddleware(cfg.Metrics))

	r.Get("/healthz", healthHandler(cfg.Redis))
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	// Only pages need the session cookie; probes and scrapers never see it.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(false))
		for _, reg := range registrars {
			reg.Register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis,omitempty"`
}

func healthHandler(redis HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		if redis == nil {
			httputil.WriteJSON(w, http.StatusOK, resp)
			return
		}
		if err := redis.Health(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Redis = "unreachable"
			httputil.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Redis = "ok"
		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}
