// Package observability defines the hook that instrumented clients use to report
// the operations they perform.
//
// Clients accept an optional Observer and call it once per finished operation.
// Metrics and tracing backends implement Observer without the clients having to
// import them.
package observability

import "time"

// OperationContext describes one finished client operation.
type OperationContext struct {
	// Component is the client that performed the operation, e.g. "vreedb".
	Component string

	// Operation is the logical operation name, e.g. "search".
	Operation string

	// Resource is the primary target of the operation (collection name, key, bucket).
	Resource string

	// SubResource carries secondary context such as a request path.
	SubResource string

	// Duration is the wall time spent in the operation.
	Duration time.Duration

	// Error is the failure returned to the caller, or nil.
	Error error

	// Size is the number of bytes sent or received, when known.
	Size int64

	// Metadata holds component-specific extras (status code, point count, ...).
	Metadata map[string]interface{}
}

// Observer receives OperationContext events.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
