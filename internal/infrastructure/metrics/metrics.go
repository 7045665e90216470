package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction service metrics
	RemoteCalls    *prometheus.CounterVec
	RemoteDuration *prometheus.HistogramVec
	RemoteRetries  *prometheus.CounterVec
	RejectedRows   *prometheus.CounterVec

	// Dashboard metrics
	Notifications *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Transaction service metrics
		RemoteCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txdash_remote_calls_total",
				Help: "Total calls to the transaction service by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		RemoteDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txdash_remote_call_duration_seconds",
				Help:    "Duration of transaction service calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RemoteRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txdash_remote_retries_total",
				Help: "Total retried transaction service calls",
			},
			[]string{"operation"},
		),
		RejectedRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txdash_import_rejected_rows_total",
				Help: "Total CSV rows rejected by the transaction service",
			},
			[]string{"operation"},
		),

		// Dashboard metrics
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txdash_notifications_total",
				Help: "Total notifications shown by kind",
			},
			[]string{"kind"},
		),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txdash_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txdash_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txdash_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "txdash_rate_limit_hits_total",
			Help: "Total requests refused by the rate limiter",
		}),
	}
}
