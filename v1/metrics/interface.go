package metrics

import (
	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is implemented by *Metrics.
type MetricsCollector interface {
	observability.Observer

	// CreateCounter creates and registers a CounterVec.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates and registers a HistogramVec.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates and registers a GaugeVec.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}

var _ MetricsCollector = (*Metrics)(nil)
