package vreedb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Transport issues JSON POST requests against a fixed base URL.
//
// Post returns the response together with its fully read body; a non-2xx
// status is not an error. Network failures are returned wrapped in
// ErrTransport. Close releases the underlying connections.
//
//go:generate mockgen -source=transport.go -destination=mock_transport.go -package=vreedb
type Transport interface {
	Post(ctx context.Context, path string, body []byte) (*http.Response, []byte, error)
	Close() error
}

// httpTransport is the default Transport over net/http. Outgoing requests are
// instrumented with otelhttp so the server sees the caller's trace context.
type httpTransport struct {
	baseURL   string
	userAgent string
	client    *http.Client
	rt        *http.Transport
	closed    atomic.Bool
}

func newHTTPTransport(baseURL string, timeout time.Duration, userAgent string) (*httpTransport, error) {
	if timeout < 0 {
		return nil, fmt.Errorf("%w: negative timeout %s", ErrTransportInit, timeout)
	}

	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected default transport %T", ErrTransportInit, http.DefaultTransport)
	}
	rt := base.Clone()

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &httpTransport{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(rt),
		},
		rt: rt,
	}, nil
}

func (t *httpTransport) Post(ctx context.Context, path string, body []byte) (*http.Response, []byte, error) {
	if t.closed.Load() {
		return nil, nil, ErrClosed
	}

	url := t.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: build request for %s: %w", ErrTransport, url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain")
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: POST %s: %w", ErrTransport, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read response of %s: %w", ErrTransport, url, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))

	return resp, data, nil
}

// Close drops idle connections. Only the first call has an effect.
func (t *httpTransport) Close() error {
	if t.closed.CompareAndSwap(false, true) {
		t.rt.CloseIdleConnections()
	}
	return nil
}
