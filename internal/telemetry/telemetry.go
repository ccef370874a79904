// Package telemetry provides Prometheus-based metrics collection for translation check runs.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//nolint:gochecknoglobals // Package-level registry and metrics required by Prometheus
var (
	registry *prometheus.Registry

	// CheckRunsTotal counts finished check runs by terminal status.
	CheckRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_check_runs_total",
			Help: "Total number of translation check runs by status",
		},
		[]string{"status"},
	)

	// FilesCheckedTotal counts validated translation files per language.
	FilesCheckedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_files_checked_total",
			Help: "Total number of translation files validated",
		},
		[]string{"lang"},
	)

	// FindingsTotal counts validation findings by kind and language.
	FindingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "translation_findings_total",
			Help: "Total number of validation findings emitted",
		},
		[]string{"kind", "lang"},
	)
)

// ConfigureTelemetry initializes the telemetry registry and registers the provided collectors.
// If useDefaultRegistry is true, uses the default Prometheus registry; otherwise creates a new one.
func ConfigureTelemetry(useDefaultRegistry bool, collectors ...prometheus.Collector) {
	if useDefaultRegistry {
		var ok bool
		registry, ok = prometheus.DefaultRegisterer.(*prometheus.Registry)
		if !ok {
			registry = prometheus.NewRegistry()
		}
	} else {
		registry = prometheus.NewRegistry()
	}

	if len(collectors) > 0 {
		registry.MustRegister(collectors...)
	} else {
		registry.MustRegister(
			CheckRunsTotal,
			FilesCheckedTotal,
			FindingsTotal,
		)
	}
}

// GetHTTPHandler returns an HTTP handler for the prometheus metrics endpoint.
func GetHTTPHandler(opts promhttp.HandlerOpts) http.Handler {
	return promhttp.HandlerFor(
		registry,
		opts,
	)
}
