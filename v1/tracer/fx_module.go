package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Tracer from a tracer.Config and shuts the provider down
// on application stop, flushing pending spans.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle appends the shutdown hook.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracer.Shutdown(ctx)
		},
	})
}
