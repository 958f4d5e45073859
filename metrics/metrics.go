// Package metrics exposes Prometheus counters for the running head
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges
type Metrics struct {
	registry *prometheus.Registry

	effectsTotal  *prometheus.CounterVec
	buttonsTotal  *prometheus.CounterVec
	motionTotal   prometheus.Counter
	requestsTotal prometheus.Counter
	errorsTotal   prometheus.Counter
	kills         prometheus.Gauge
	visitors      prometheus.Gauge
}

// New creates and registers the metrics on a private registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		effectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orchead_effects_triggered_total",
			Help: "Effect timelines started, by effect",
		}, []string{"effect"}),
		buttonsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orchead_button_presses_total",
			Help: "Control presses, by button and source",
		}, []string{"button", "source"}),
		motionTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orchead_motion_samples_total",
			Help: "Accelerometer samples received over the motion socket",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orchead_http_requests_total",
			Help: "Total number of HTTP requests received",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orchead_http_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
		kills: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orchead_kills",
			Help: "Persisted kill count",
		}),
		visitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orchead_visitors",
			Help: "Persisted visitor count",
		}),
	}

	registry.MustRegister(
		m.effectsTotal,
		m.buttonsTotal,
		m.motionTotal,
		m.requestsTotal,
		m.errorsTotal,
		m.kills,
		m.visitors,
	)
	return m
}

// IncEffect counts one accepted effect trigger
func (m *Metrics) IncEffect(id string) {
	m.effectsTotal.WithLabelValues(id).Inc()
}

// IncButton counts one control press; source is "key", "mouse" or "remote"
func (m *Metrics) IncButton(name, source string) {
	m.buttonsTotal.WithLabelValues(name, source).Inc()
}

// IncMotion counts one motion sample
func (m *Metrics) IncMotion() {
	m.motionTotal.Inc()
}

// IncRequests increments the total request counter
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// SetCounts sets the persisted counter gauges
func (m *Metrics) SetCounts(kills, visitors int64) {
	m.kills.Set(float64(kills))
	m.visitors.Set(float64(visitors))
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an http.Handler that serves the metrics
// updateGauges is called before each scrape to refresh gauge values
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
