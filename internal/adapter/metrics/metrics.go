package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuditMetrics holds all Prometheus metrics for the audit service.
type AuditMetrics struct {
	SourceReloads  prometheus.Counter
	SourceErrors   prometheus.Counter
	CacheHits      prometheus.Counter
	DecodeFailures prometheus.Counter
	CachedRecords  prometheus.Gauge
	ViewRequests   *prometheus.CounterVec
}

// NewAuditMetrics initializes and registers the Prometheus metrics.
func NewAuditMetrics() *AuditMetrics {
	return &AuditMetrics{
		SourceReloads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "audit_scope",
			Subsystem: "ingestion",
			Name:      "source_reloads_total",
			Help:      "Total number of full source re-reads triggered by a version change.",
		}),
		SourceErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "audit_scope",
			Subsystem: "ingestion",
			Name:      "source_errors_total",
			Help:      "Total number of failed source version checks or reads.",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "audit_scope",
			Subsystem: "ingestion",
			Name:      "cache_hits_total",
			Help:      "Total number of loads served from the decoded-record cache.",
		}),
		DecodeFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "audit_scope",
			Subsystem: "ingestion",
			Name:      "decode_failures_total",
			Help:      "Total number of records dropped because their metadata failed to decode.",
		}),
		CachedRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "audit_scope",
			Subsystem: "ingestion",
			Name:      "cached_records_gauge",
			Help:      "Number of decoded records in the current cache snapshot.",
		}),
		ViewRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "audit_scope",
			Subsystem: "api",
			Name:      "view_requests_total",
			Help:      "Total number of view requests by view name.",
		}, []string{"view"}), // view: records, statistics, risks, profile, dashboard
	}
}
