package metrics

import (
	"strconv"

	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
)

// ObserveOperation implements observability.Observer.
//
// The status label is "error" when the operation failed, the HTTP status code
// when the component reported one under Metadata["status_code"], and "ok"
// otherwise.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	m.operationsTotal.WithLabelValues(op.Component, op.Operation, operationStatus(op)).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		m.operationBytes.WithLabelValues(op.Component, op.Operation).Add(float64(op.Size))
	}
}

func operationStatus(op observability.OperationContext) string {
	if op.Error != nil {
		return "error"
	}
	if code, ok := op.Metadata["status_code"].(int); ok && code > 0 {
		return strconv.Itoa(code)
	}
	return "ok"
}
