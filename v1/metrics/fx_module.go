package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/Aleph-Alpha/vreedb-go/v1/logger"
	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"go.uber.org/fx"
)

// FXModule provides *Metrics and exposes it as an observability.Observer so
// instrumented clients in the same container pick it up automatically. Services
// that register their own metrics can depend on MetricsCollector instead.
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config { return metrics.Config{Address: ":9090", ServiceName: "indexer"} }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) observability.Observer { return m },
			fx.As(new(observability.Observer)),
		),
		func(m *Metrics) MetricsCollector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the lifecycle dependencies.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the /metrics server on start and shuts it
// down gracefully on stop.
func RegisterMetricsLifecycle(p MetricsLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if p.Logger != nil {
					p.Logger.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
						"address": p.Metrics.Server.Addr,
					})
				}
				if err := p.Metrics.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && p.Logger != nil {
					p.Logger.Error("Prometheus metrics server failed", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p.Logger != nil {
				p.Logger.Info("Shutting down Prometheus metrics server", nil)
			}
			return p.Metrics.Server.Shutdown(ctx)
		},
	})
}
