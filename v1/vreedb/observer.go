package vreedb

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"go.opentelemetry.io/otel/trace"
)

const component = "vreedb"

// observeOperation notifies the observer, if any, about a finished call.
//
//   - resource: the collection the call targeted ("" for list_collections)
//   - subResource: the request path
func (c *Client) observeOperation(cl call, path string, duration time.Duration, res *Result, size int64, err error) {
	if c == nil || c.observer == nil {
		return
	}

	var metadata map[string]interface{}
	if code := res.StatusCode(); code != 0 {
		metadata = map[string]interface{}{"status_code": code}
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   component,
		Operation:   string(cl.op),
		Resource:    cl.resource,
		SubResource: path,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

func (c *Client) startSpan(ctx context.Context, cl call) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, nil
	}
	ctx, span := c.tracer.StartSpan(ctx, component+"."+string(cl.op))
	attrs := map[string]interface{}{
		"vreedb.operation": string(cl.op),
		"server.address":   c.endpoint.Hostname,
		"server.port":      c.endpoint.Port,
	}
	if cl.resource != "" {
		attrs["vreedb.collection"] = cl.resource
	}
	c.tracer.SetAttributes(span, attrs)
	return ctx, span
}

func (c *Client) endSpan(span trace.Span, res *Result, err error) {
	if span == nil {
		return
	}
	if code := res.StatusCode(); code != 0 {
		c.tracer.SetAttributes(span, map[string]interface{}{"http.response.status_code": code})
	}
	if err != nil {
		c.tracer.RecordErrorOnSpan(span, err)
	}
	span.End()
}
