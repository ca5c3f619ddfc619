package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated Prometheus registry, the HTTP server exposing it and
// the built-in client operation metrics.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry holds every metric of this service.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationBytes    *prometheus.CounterVec
}

// NewMetrics creates the registry, registers the operation metrics (and the
// default collectors if enabled) and prepares, but does not start, the server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "indexer"})
//	client = client.WithObserver(m)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// Every metric registered through m.registerer carries service="<name>".
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
		namespace:  cfg.Namespace,
	}

	m.operationsTotal = m.CreateCounter(
		"client_operations_total",
		"Total number of client operations by component, operation and status",
		[]string{"component", "operation", "status"},
	)
	m.operationDuration = m.CreateHistogram(
		"client_operation_duration_seconds",
		"Duration of client operations in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)
	m.operationBytes = m.CreateCounter(
		"client_operation_bytes_total",
		"Request and response bytes moved by client operations",
		[]string{"component", "operation"},
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
