package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarmap_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solarmap_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	SearchResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarmap_search_resolutions_total",
			Help: "City searches by outcome (exact, partial, not_found, empty)",
		},
		[]string{"match"},
	)

	MapCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solarmap_map_cache_lookups_total",
			Help: "Composed map cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	MapCompositions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solarmap_map_compositions_total",
			Help: "Maps composed from scratch",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solarmap_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)
