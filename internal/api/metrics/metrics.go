package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for calls to the core loan API.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	Requests        *prometheus.CounterVec
}

// New registers the upstream metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loandesk_upstream_request_duration_seconds",
			Help:    "Duration of core API calls by operation and outcome",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation", "outcome"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loandesk_upstream_requests_total",
			Help: "Core API calls by operation and HTTP status (0 for transport failures)",
		}, []string{"operation", "status"}),
	}
}

// ObserveRequest records one call. outcome is "ok", "error" or "invalid_response".
func (m *Metrics) ObserveRequest(operation, outcome string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	m.Requests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
}
