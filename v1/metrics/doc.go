// Package metrics exposes Prometheus metrics for std clients.
//
// NewMetrics builds an isolated registry (every metric labelled with the
// service name) and an HTTP server serving it on /metrics. *Metrics
// implements observability.Observer, recording for every client operation:
//
//   - client_operations_total{component, operation, status}
//   - client_operation_duration_seconds{component, operation}
//   - client_operation_bytes_total{component, operation}
//
// Wire it to a client directly:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "indexer"})
//	client, _ := vreedb.NewClient(cfg)
//	client.WithObserver(m)
//
// or let FXModule provide it as the container's observability.Observer.
//
// Custom metrics can be added with CreateCounter, CreateHistogram and CreateGauge.
package metrics
