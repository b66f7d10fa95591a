package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Outbound emails by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	InsightFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Insight lookups by outcome (cache_hit, fetched, fallback)",
		},
		[]string{"outcome"},
	)

	RecordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "Persisted records by kind",
		},
		[]string{"kind"},
	)

	AdminConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "admin_event_connections",
			Help: "Open admin event feed connections",
		},
	)
)

// Insight outcomes
const (
	InsightCacheHit = "cache_hit"
	InsightFetched  = "fetched"
	InsightFallback = "fallback"
)
