package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a CounterVec under the configured namespace and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: m.namespace, Name: name, Help: help},
		labels,
	)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a HistogramVec under the configured namespace and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: m.namespace, Name: name, Help: help, Buckets: buckets},
		labels,
	)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates a GaugeVec under the configured namespace and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: m.namespace, Name: name, Help: help},
		labels,
	)
	m.registerer.MustRegister(gauge)
	return gauge
}
