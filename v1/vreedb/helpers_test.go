package vreedb

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Aleph-Alpha/vreedb-go/v1/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

// recordingServer answers every request with a fixed status and body and
// keeps the decoded request bodies.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	status      int
	body        string
	contentType string
}

func newRecordingServer(t *testing.T, status int, contentType, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{status: status, body: body, contentType: contentType}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(raw, &decoded))

		rs.mu.Lock()
		rs.requests = append(rs.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   decoded,
		})
		rs.mu.Unlock()

		w.Header().Set("Content-Type", rs.contentType)
		w.WriteHeader(rs.status)
		_, _ = io.WriteString(w, rs.body)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) last(t *testing.T) recordedRequest {
	t.Helper()
	rs.mu.Lock()
	defer rs.mu.Unlock()
	require.NotEmpty(t, rs.requests, "server received no request")
	return rs.requests[len(rs.requests)-1]
}

func (rs *recordingServer) count() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.requests)
}

func newTestClient(t *testing.T, rs *recordingServer, apiKey string) *Client {
	t.Helper()
	client, err := NewClient(FromHost(rs.URL).WithAPIKey(apiKey).WithTimeout(5 * time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// TestObserver records every observed operation.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (o *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, ctx)
}

func (o *TestObserver) GetOperations() []observability.OperationContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observability.OperationContext{}, o.operations...)
}
