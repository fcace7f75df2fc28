// Package metrics exposes run-level Prometheus metrics, served by the
// preview/daemon HTTP listener.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts pipeline runs by outcome (delivered, dry_run,
	// failed).
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bleacherbot_runs_total",
		Help: "Pipeline runs by outcome.",
	}, []string{"outcome"})

	// FallbackRunsTotal counts runs whose synthesis came from the
	// rule-based fallback instead of the model.
	FallbackRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bleacherbot_fallback_runs_total",
		Help: "Runs that used the deterministic fallback synthesis.",
	})

	// SourceFailures counts collector fetches that failed and degraded
	// to an empty category.
	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bleacherbot_source_failures_total",
		Help: "Source fetches that failed, by category.",
	}, []string{"category"})

	// RecordsCollected counts collected source records per category.
	RecordsCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bleacherbot_records_collected_total",
		Help: "Source records collected, by category.",
	}, []string{"category"})

	// RunDuration observes end-to-end run time.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bleacherbot_run_duration_seconds",
		Help:    "End-to-end pipeline run duration.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
