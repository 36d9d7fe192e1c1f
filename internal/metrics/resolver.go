// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	configLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twresolve_config_loads_total",
		Help: "Configuration load attempts by outcome",
	}, []string{"outcome"}) // outcome=success|malformed|io_error

	contentPatternsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twresolve_content_patterns_total",
		Help: "Content patterns expanded by result",
	}, []string{"result"}) // result=matched|empty

	contentFilesResolved = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twresolve_content_files_resolved",
		Help: "Number of distinct content files in the last resolution",
	})

	safelistClasses = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twresolve_safelist_classes",
		Help: "Number of classes after the last safelist merge",
	})

	resolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "twresolve_resolve_duration_seconds",
		Help:    "Wall time of content path resolution",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twresolve_config_reloads_total",
		Help: "Watch-mode reloads by outcome",
	}, []string{"outcome"}) // outcome=success|failure
)

// Load outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeMalformed = "malformed"
	OutcomeIOError   = "io_error"
	OutcomeFailure   = "failure"
)

func IncConfigLoad(outcome string) { configLoadsTotal.WithLabelValues(outcome).Inc() }

// RecordPattern records the result of expanding one content pattern.
func RecordPattern(matches int) {
	if matches == 0 {
		contentPatternsTotal.WithLabelValues("empty").Inc()
		return
	}
	contentPatternsTotal.WithLabelValues("matched").Inc()
}

// RecordResolution records the size and duration of a completed resolution.
func RecordResolution(files int, d time.Duration) {
	contentFilesResolved.Set(float64(files))
	resolveDuration.Observe(d.Seconds())
}

func RecordSafelist(classes int) { safelistClasses.Set(float64(classes)) }

// IncReload records a watch-mode reload.
func IncReload(ok bool) {
	if ok {
		reloadsTotal.WithLabelValues(OutcomeSuccess).Inc()
		return
	}
	reloadsTotal.WithLabelValues(OutcomeFailure).Inc()
}

// WriteTextfile writes all default-registry metrics in text exposition format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
