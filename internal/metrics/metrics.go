// internal/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	// Registration metrics
	RegistrationsCounter  prometheus.CounterVec
	EvidenceUploadCounter prometheus.CounterVec

	// Database operation metrics
	DBOperationDuration prometheus.HistogramVec
)

// Init initializes Prometheus metrics with the configured prefix.
func Init(prefix string) {
	HTTPRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RegistrationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_merchant_registrations_total",
			Help: "Total number of merchant registrations",
		},
		[]string{"delegation"},
	)

	EvidenceUploadCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_evidence_uploads_total",
			Help: "Total number of evidence uploads",
		},
		[]string{"result"},
	)

	DBOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordRegistration increments the registration counter for a delegation.
func RecordRegistration(delegation string) {
	RegistrationsCounter.WithLabelValues(delegation).Inc()
}

// RecordEvidenceUpload increments the evidence upload counter.
func RecordEvidenceUpload(result string) {
	EvidenceUploadCounter.WithLabelValues(result).Inc()
}
