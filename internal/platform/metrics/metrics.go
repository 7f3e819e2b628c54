package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dashboard-wide Prometheus metrics.
type Metrics struct {
	PageRequests *prometheus.CounterVec
	PageDuration *prometheus.HistogramVec
	Toasts       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates and registers the dashboard metrics on reg. Pass
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PageRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loandesk_page_requests_total",
			Help: "Dashboard requests by route pattern and status code",
		}, []string{"route", "status"}),
		PageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loandesk_page_duration_seconds",
			Help:    "Dashboard request duration by route pattern, including upstream calls",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route"}),
		Toasts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loandesk_toasts_total",
			Help: "Toast messages shown to staff by level",
		}, []string{"level"}),
		gatherer: reg,
	}
}

// ObservePage records one dashboard request. Call with time.Now() taken at the
// start of the request.
func (m *Metrics) ObservePage(route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.PageRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.PageDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// IncrementToast records a toast of the given level (success, error).
func (m *Metrics) IncrementToast(level string) {
	if m == nil {
		return
	}
	m.Toasts.WithLabelValues(level).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
