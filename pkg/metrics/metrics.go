// Package metrics exposes the node's operational counters over Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itohio/sunmon/pkg/report"
)

// Metrics aggregates the node's Prometheus instruments on a private
// registry.
type Metrics struct {
	reg *prometheus.Registry

	SamplesRecorded  prometheus.Counter
	Flushes          prometheus.Counter
	SubmitFailures   prometheus.Counter
	ProbesDiscovered prometheus.Gauge
	PowerAvgWatts    prometheus.Gauge
}

// New creates and registers the node instruments.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		SamplesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunmon_samples_recorded_total",
			Help: "Electrical samples folded into reporting windows.",
		}),
		Flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunmon_flushes_total",
			Help: "Completed reporting cycles.",
		}),
		SubmitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sunmon_submit_failures_total",
			Help: "Record submissions the gateway rejected or dropped.",
		}),
		ProbesDiscovered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sunmon_probes_discovered",
			Help: "One-wire probes discovered in the last cycle.",
		}),
		PowerAvgWatts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sunmon_power_avg_watts",
			Help: "Average panel power of the last reporting window.",
		}),
	}

	m.reg.MustRegister(
		m.SamplesRecorded,
		m.Flushes,
		m.SubmitFailures,
		m.ProbesDiscovered,
		m.PowerAvgWatts,
	)

	return m
}

// ObserveFlush folds one completed reporting cycle into the instruments.
// Registered as an OnFlush callback on the controller.
func (m *Metrics) ObserveFlush(f report.Flush) {
	m.Flushes.Inc()
	m.SamplesRecorded.Add(float64(f.Stats.Count))
	m.ProbesDiscovered.Set(float64(len(f.Readings)))
	if f.Stats.Valid() {
		m.PowerAvgWatts.Set(float64(f.Stats.PowerAvg))
	}
	if f.SubmitErr != nil {
		m.SubmitFailures.Inc()
	}
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve blocks serving /metrics on addr.
func (m *Metrics) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return http.ListenAndServe(addr, mux)
}
