package vreedb

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"go.opentelemetry.io/otel/trace"
)

// Logger is the logging contract the client accepts. *logger.LoggerClient
// satisfies it.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracer opens one span per operation. *tracer.Tracer satisfies it.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
}

// Client is the blocking vreedb client. Every method issues exactly one POST
// and returns when the response has been read; there are no retries.
//
// A Client owns one Transport and is safe for concurrent use. Close it when
// done.
type Client struct {
	endpoint  Endpoint
	apiKey    string
	transport Transport

	logger   Logger
	observer observability.Observer
	tracer   Tracer

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// NewClient resolves cfg.Host and builds the HTTP transport.
//
// It fails with ErrHostResolution for an unparseable host and with
// ErrTransportInit for an invalid timeout; no partial client is returned.
//
// Example:
//
//	client, err := vreedb.NewClient(vreedb.FromHost("myhost:9000"))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	res, err := client.CreateCollection(ctx, "docs", "cosine", 128)
func NewClient(cfg Config) (*Client, error) {
	endpoint, err := ResolveEndpoint(cfg.Host)
	if err != nil {
		return nil, err
	}

	transport, err := newHTTPTransport(endpoint.String(), cfg.Timeout, cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	return newClient(endpoint, cfg.APIKey, transport), nil
}

// NewClientWithTransport is NewClient with a caller-supplied Transport, e.g. a
// mock in tests. The host is still resolved so BaseURL is meaningful; the
// transport is responsible for actually targeting it.
func NewClientWithTransport(cfg Config, transport Transport) (*Client, error) {
	endpoint, err := ResolveEndpoint(cfg.Host)
	if err != nil {
		return nil, err
	}
	return newClient(endpoint, cfg.APIKey, transport), nil
}

func newClient(endpoint Endpoint, apiKey string, transport Transport) *Client {
	return &Client{
		endpoint:  endpoint,
		apiKey:    apiKey,
		transport: transport,
		logger:    nopLogger{},
	}
}

// WithLogger sets the logger and returns the client for chaining.
// Configure the client before sharing it between goroutines.
func (c *Client) WithLogger(logger Logger) *Client {
	if logger == nil {
		logger = nopLogger{}
	}
	c.logger = logger
	c.logger.Debug("vreedb client configured", nil, map[string]interface{}{
		"base_url": c.endpoint.String(),
	})
	return c
}

// WithObserver sets the operation observer and returns the client for chaining.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithTracer sets the tracer and returns the client for chaining.
func (c *Client) WithTracer(tracer Tracer) *Client {
	c.tracer = tracer
	return c
}

// BaseURL returns the resolved scheme://hostname:port.
func (c *Client) BaseURL() string { return c.endpoint.String() }

// Endpoint returns the resolved endpoint.
func (c *Client) Endpoint() Endpoint { return c.endpoint }

// Close releases the transport. It is safe to call more than once; the
// transport is closed exactly once. Calls made after Close fail with ErrClosed
// without reaching the transport.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.closeErr = c.transport.Close()
		c.logger.Debug("vreedb client closed", c.closeErr, map[string]interface{}{
			"base_url": c.endpoint.String(),
		})
	})
	return c.closeErr
}

// Async returns an AsyncClient sharing this client's transport and hooks.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{client: c}
}

// Search runs a nearest-neighbor search. Result.Value is the response text.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*Result, error) {
	return c.execute(ctx, searchCall(req))
}

// CreateCollection creates a collection. Result.Value is the response text.
func (c *Client) CreateCollection(ctx context.Context, name, distFunc string, dimensions int) (*Result, error) {
	return c.execute(ctx, createCollectionCall(name, distFunc, dimensions))
}

// ListCollections lists all collections. Result.Value is decoded JSON.
func (c *Client) ListCollections(ctx context.Context) (*Result, error) {
	return c.execute(ctx, listCollectionsCall())
}

// DeleteCollection deletes a collection. Result.Value is decoded JSON.
func (c *Client) DeleteCollection(ctx context.Context, name string) (*Result, error) {
	return c.execute(ctx, deleteCollectionCall(name))
}

// AddPoint inserts one point. With wait set the server replies only after the
// point is stored. Result.Value is decoded JSON.
func (c *Client) AddPoint(ctx context.Context, collection string, vector []float64, payload map[string]any, wait bool) (*Result, error) {
	return c.execute(ctx, addPointCall(collection, vector, payload, wait))
}

// AddPointBatch inserts len(vectors) points in one request, zipping vectors,
// ids and payloads index-wise (see ZipPoints). Mismatched lengths fail with
// ErrArgumentMismatch before anything is sent. Result.Value is decoded JSON.
func (c *Client) AddPointBatch(ctx context.Context, collection string, vectors [][]float64, ids []string, payloads []map[string]any) (*Result, error) {
	return c.execute(ctx, addPointBatchCall(collection, vectors, ids, payloads))
}

// AddPoints is AddPointBatch for already assembled points.
func (c *Client) AddPoints(ctx context.Context, collection string, points []Point) (*Result, error) {
	return c.execute(ctx, addPointsCall(collection, points))
}

// Classify classifies vector with a named classifier. Result.Value is decoded JSON.
func (c *Client) Classify(ctx context.Context, collection, classifier string, vector []float64) (*Result, error) {
	return c.execute(ctx, classifyCall(collection, classifier, vector))
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
