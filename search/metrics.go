package search

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics provides Prometheus-compatible metrics collection for
// search runs.
//
// Metrics exposed (all namespaced with "statesearch_"):
//
//  1. expanded_states_total (counter): states accepted for expansion.
//     Labels: run_id, algorithm (astar, dfs, iddfs).
//  2. frontier_depth (gauge): live entries on the frontier (A*) or the
//     pending stack (DFS) after the most recent expansion.
//  3. solve_latency_ms (histogram): wall-clock duration of one Search
//     call. Labels: algorithm, status (solved, exhausted, canceled, error).
//  4. deepening_rounds_total (counter): depth limits tried by the
//     iterative deepening driver. Labels: run_id.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	metrics := search.NewPrometheusMetrics(registry)
//	engine := search.NewAStar(problem, nil, metrics)
//
//	// Expose via HTTP for Prometheus scraping:
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// Thread-safe: metric updates go through prometheus primitives; the
// enabled flag is mutex-protected.
type PrometheusMetrics struct {
	expanded        *prometheus.CounterVec
	frontierDepth   prometheus.Gauge
	solveLatency    *prometheus.HistogramVec
	deepeningRounds *prometheus.CounterVec

	registry prometheus.Registerer

	mu      sync.RWMutex
	enabled bool
}

// NewPrometheusMetrics creates and registers all search metrics with the
// provided Prometheus registry. A nil registry falls back to the global
// default registerer.
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	pm := &PrometheusMetrics{
		registry: registry,
		enabled:  true,
	}

	pm.expanded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "expanded_states_total",
		Help:      "States accepted for expansion, once per distinct state (A*) or accepted pop (DFS)",
	}, []string{"run_id", "algorithm"})

	pm.frontierDepth = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "statesearch",
		Name:      "frontier_depth",
		Help:      "Live entries on the priority frontier or pending DFS stack after the latest expansion",
	})

	pm.solveLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "statesearch",
		Name:      "solve_latency_ms",
		Help:      "Wall-clock duration of one Search call in milliseconds",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
	}, []string{"algorithm", "status"}) // status: solved, exhausted, canceled, error

	pm.deepeningRounds = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statesearch",
		Name:      "deepening_rounds_total",
		Help:      "Depth limits tried by the iterative deepening driver",
	}, []string{"run_id"})

	return pm
}

// IncrementExpanded counts one accepted expansion for the given run and
// algorithm.
func (pm *PrometheusMetrics) IncrementExpanded(runID, algorithm string) {
	if !pm.recording() {
		return
	}
	pm.expanded.WithLabelValues(runID, algorithm).Inc()
}

// UpdateFrontierDepth sets the current number of discovered-but-not-yet-
// expanded entries.
func (pm *PrometheusMetrics) UpdateFrontierDepth(depth int) {
	if !pm.recording() {
		return
	}
	pm.frontierDepth.Set(float64(depth))
}

// RecordSolveLatency records the duration of one Search call.
func (pm *PrometheusMetrics) RecordSolveLatency(algorithm string, latency time.Duration, status string) {
	if !pm.recording() {
		return
	}
	pm.solveLatency.WithLabelValues(algorithm, status).Observe(float64(latency.Milliseconds()))
}

// IncrementDeepeningRounds counts one depth limit tried by the iterative
// deepening driver.
func (pm *PrometheusMetrics) IncrementDeepeningRounds(runID string) {
	if !pm.recording() {
		return
	}
	pm.deepeningRounds.WithLabelValues(runID).Inc()
}

// Disable temporarily disables metric recording (useful for testing).
func (pm *PrometheusMetrics) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = false
}

// Enable re-enables metric recording after Disable().
func (pm *PrometheusMetrics) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = true
}

func (pm *PrometheusMetrics) recording() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.enabled
}
