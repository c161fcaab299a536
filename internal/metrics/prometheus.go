// ABOUTME: Prometheus-backed Recorder for coach-mark lifecycle metrics
// ABOUTME: Registers on a caller-supplied registry and serves it over HTTP for the demo

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements the Recorder interface using Prometheus metrics.
type PrometheusRecorder struct {
	shownTotal     *prometheus.CounterVec
	dismissedTotal *prometheus.CounterVec
	timeoutTotal   *prometheus.CounterVec
	raceTotal      *prometheus.CounterVec
	visibleSeconds *prometheus.HistogramVec
	gatherer       prometheus.Gatherer
}

// NewPrometheusRecorder creates a recorder registered on reg. A nil reg
// gets a fresh registry so several recorders can coexist in tests.
func NewPrometheusRecorder(reg *prometheus.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		shownTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coachmark_shown_total",
				Help: "Total number of coach marks shown, by variant",
			},
			[]string{"variant"},
		),
		dismissedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coachmark_dismissed_total",
				Help: "Total number of coach marks dismissed, by variant and reason",
			},
			[]string{"variant", "reason"},
		),
		timeoutTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coachmark_timeout_total",
				Help: "Total number of coach-mark timeouts that fired while visible",
			},
			[]string{"variant"},
		),
		raceTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coachmark_surface_race_total",
				Help: "Total number of dismissals that found the surface already removed",
			},
			[]string{"variant"},
		),
		visibleSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coachmark_visible_duration_seconds",
				Help:    "Time coach marks stayed visible",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 300},
			},
			[]string{"variant"},
		),
		gatherer: reg,
	}
}

// ObserveShown increments the shown counter.
func (p *PrometheusRecorder) ObserveShown(variant string) {
	p.shownTotal.WithLabelValues(variant).Inc()
}

// ObserveDismissed increments the dismissed counter and records visible time.
func (p *PrometheusRecorder) ObserveDismissed(variant, reason string, visible time.Duration) {
	p.dismissedTotal.WithLabelValues(variant, reason).Inc()
	p.visibleSeconds.WithLabelValues(variant).Observe(visible.Seconds())
}

// IncTimeout increments the timeout counter.
func (p *PrometheusRecorder) IncTimeout(variant string) {
	p.timeoutTotal.WithLabelValues(variant).Inc()
}

// IncSurfaceRace increments the surface race counter.
func (p *PrometheusRecorder) IncSurfaceRace(variant string) {
	p.raceTotal.WithLabelValues(variant).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}
