package vreedb

import (
	"context"

	"github.com/Aleph-Alpha/vreedb-go/v1/logger"
	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"github.com/Aleph-Alpha/vreedb-go/v1/tracer"
	"go.uber.org/fx"
)

// FXModule provides *Client and *AsyncClient from a vreedb.Config and closes
// the client when the application stops.
//
// Logger, observer and tracer are picked up when present in the container:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    tracer.FXModule,
//	    vreedb.FXModule,
//	    fx.Provide(func() vreedb.Config { return vreedb.FromHost("vectors:9000") }),
//	    fx.Invoke(func(c *vreedb.Client) { /* ... */ }),
//	)
var FXModule = fx.Module("vreedb",
	fx.Provide(
		NewClientWithDI,
		NewAsyncClientWithDI,
	),
	fx.Invoke(RegisterVreedbLifecycle),
)

// VreedbParams groups the dependencies of NewClientWithDI.
type VreedbParams struct {
	fx.In

	Config   Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewClientWithDI builds a Client and attaches the optional hooks.
func NewClientWithDI(p VreedbParams) (*Client, error) {
	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}

	if p.Logger != nil {
		client.WithLogger(p.Logger)
	}
	if p.Observer != nil {
		client.WithObserver(p.Observer)
	}
	if p.Tracer != nil {
		client.WithTracer(p.Tracer)
	}
	return client, nil
}

// NewAsyncClientWithDI exposes the container's Client as an AsyncClient.
func NewAsyncClientWithDI(client *Client) *AsyncClient {
	return client.Async()
}

// RegisterVreedbLifecycle closes the client on application stop.
func RegisterVreedbLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
