package vreedb

import (
	"context"
	"net/http"
	"testing"

	"github.com/Aleph-Alpha/vreedb-go/v1/logger"
	"github.com/Aleph-Alpha/vreedb-go/v1/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModuleWiresObserverAndLifecycle(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, "application/json", `{"collections":["docs"]}`)

	var (
		client *Client
		async  *AsyncClient
		m      *metrics.Metrics
	)
	app := fxtest.New(t,
		logger.FXModule,
		metrics.FXModule,
		FXModule,
		fx.Provide(
			func() logger.Config { return logger.Config{Level: logger.Error, ServiceName: "vreedb-test"} },
			func() metrics.Config { return metrics.Config{Address: "127.0.0.1:0", ServiceName: "vreedb-test"} },
			func() Config { return FromHost(rs.URL).WithAPIKey("k") },
		),
		fx.Populate(&client, &async, &m),
	)
	app.RequireStart()

	assert.Same(t, client, async.Client())

	res, err := client.ListCollections(context.Background())
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())

	count, err := testutil.GatherAndCount(m.Registry, "client_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	app.RequireStop()

	_, err = client.ListCollections(context.Background())
	assert.True(t, IsClosedError(err))
}

func TestFXModuleWithoutOptionalHooks(t *testing.T) {
	var client *Client
	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return FromHost("vectors.internal:9000") }),
		fx.Populate(&client),
	)
	app.RequireStart()
	assert.Equal(t, "http://vectors.internal:9000", client.BaseURL())
	assert.Nil(t, client.observer)
	app.RequireStop()
}

func TestFXModuleRejectsBadHost(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		FXModule,
		fx.Provide(func() Config { return FromHost("myhost:abc") }),
	)
	err := app.Err()
	require.Error(t, err)
	assert.True(t, IsHostResolutionError(err))
}
