// Package metrics exposes Prometheus instruments for the narrative server
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "narrative"

// Move results
const (
	MoveOK      = "ok"
	MoveBlocked = "blocked"
	MoveInvalid = "invalid_direction"
)

// Metrics groups the session instruments. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive  prometheus.Gauge
	sessionsStarted prometheus.Counter
	sessionsEnded   *prometheus.CounterVec
	linesShown      prometheus.Counter
	moves           *prometheus.CounterVec
	gameOvers       *prometheus.CounterVec
}

// New registers the instruments on a fresh registry together with the Go
// and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of live sessions.",
		}),
		sessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of sessions created.",
		}),
		sessionsEnded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_ended_total",
			Help:      "Total number of sessions removed, partitioned by reason.",
		}, []string{"reason"}),
		linesShown: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogue_lines_shown_total",
			Help:      "Total number of dialogue lines rendered to players.",
		}),
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Total number of movement attempts, partitioned by result.",
		}, []string{"result"}),
		gameOvers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Total number of games lost, partitioned by the character that fell.",
		}, []string{"character"}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SessionStarted records a new live session
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
	m.sessionsActive.Inc()
}

// SessionEnded records a removed session; reason is "exit", "replaced" or "evicted"
func (m *Metrics) SessionEnded(reason string) {
	if m == nil {
		return
	}
	m.sessionsEnded.WithLabelValues(reason).Inc()
	m.sessionsActive.Dec()
}

// LineShown records a rendered dialogue line
func (m *Metrics) LineShown() {
	if m == nil {
		return
	}
	m.linesShown.Inc()
}

// Move records a movement attempt
func (m *Metrics) Move(result string) {
	if m == nil {
		return
	}
	m.moves.WithLabelValues(result).Inc()
}

// GameOver records a defeat
func (m *Metrics) GameOver(character string) {
	if m == nil {
		return
	}
	m.gameOvers.WithLabelValues(character).Inc()
}
