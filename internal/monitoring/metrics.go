package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatproxy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_class"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatproxy_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path", "status_class"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatproxy_http_inflight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatproxy_upstream_requests_total",
			Help: "Total number of upstream API requests",
		},
		[]string{"provider", "status_class"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatproxy_upstream_request_duration_seconds",
			Help:    "Time to first upstream response header in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider"},
	)

	RelayBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatproxy_relay_bytes_total",
			Help: "Bytes relayed from upstream streams to callers",
		},
		[]string{"provider"},
	)

	RelayDisconnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatproxy_relay_disconnects_total",
			Help: "Stream terminations by provider and reason",
		},
		[]string{"provider", "reason"},
	)

	RateLimitRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatproxy_ratelimit_rejected_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)

	RateLimitKeysGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatproxy_ratelimit_keys",
			Help: "Number of per-key limiters currently cached",
		},
	)

	RateLimitSweepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatproxy_ratelimit_sweeps_total",
			Help: "TTL sweeps performed on the limiter cache",
		},
	)
)
