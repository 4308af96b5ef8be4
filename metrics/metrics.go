// Package metrics provides Prometheus instrumentation for the rendering
// path: cells formatted, fallback renders by reason, and per-record
// latency.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and histograms for one rendering pipeline.
type Metrics struct {
	RecordsRendered prometheus.Counter
	CellsFormatted  prometheus.Counter
	FallbackRenders *prometheus.CounterVec
	RenderLatency   prometheus.Histogram

	registry *prometheus.Registry
}

// New creates a Metrics instance registered on its own registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RecordsRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rendered_total",
			Help:      "Total number of Arrow records rendered",
		}),
		CellsFormatted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_formatted_total",
			Help:      "Total number of cells formatted",
		}),
		FallbackRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_renders_total",
			Help:      "Cells that degraded to raw stringification, by reason",
		}, []string{"reason"}),
		RenderLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "record_render_latency_seconds",
			Help:      "Wall time spent rendering one record",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		registry: reg,
	}
}

// CountFallback increments the fallback counter for a reason tag. Shaped
// to plug directly into the formatter's fallback hook.
func (m *Metrics) CountFallback(reason string) {
	m.FallbackRenders.WithLabelValues(reason).Inc()
}

// Serve exposes the metrics on addr at /metrics. Blocks like
// http.ListenAndServe.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

// Registry exposes the underlying registry for embedding applications
// that aggregate several collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
