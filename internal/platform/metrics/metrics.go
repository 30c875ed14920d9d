package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store
	StoreReadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_store_read_duration_seconds",
			Help:    "Duration of document store reads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "result"},
	)

	StoreRecordsRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_store_records_read_total",
			Help: "Total number of records returned by the document store",
		},
		[]string{"backend"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_store_breaker_state",
			Help: "Store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Snapshots
	SnapshotLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_snapshot_lookups_total",
			Help: "Record set lookups by preset and result (hit, miss, stale, narrowed)",
		},
		[]string{"preset", "result"},
	)

	// Vistas
	ViewRowsVisible = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_view_visible_rows",
			Help:    "Rows in the table's visible subset per view computation",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
)

func ObserveStoreRead(backend string, d time.Duration, rows int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreReadDuration.WithLabelValues(backend, result).Observe(d.Seconds())
	if err == nil {
		StoreRecordsRead.WithLabelValues(backend).Add(float64(rows))
	}
}

func SetBreakerState(name string, state int) {
	BreakerState.WithLabelValues(name).Set(float64(state))
}

func RecordSnapshotLookup(preset, result string) {
	SnapshotLookups.WithLabelValues(preset, result).Inc()
}

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
