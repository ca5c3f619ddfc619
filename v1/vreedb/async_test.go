package vreedb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockAsync(t *testing.T) (*AsyncClient, *MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := NewMockTransport(ctrl)
	client, err := NewClientWithTransport(DefaultConfig(), transport)
	require.NoError(t, err)
	return client.Async(), transport
}

func okResponse(body string) (*http.Response, []byte, error) {
	return &http.Response{StatusCode: http.StatusOK}, []byte(body), nil
}

func TestAsyncConcurrentCalls(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, "application/json", `{"collections":[]}`)
	async := newTestClient(t, rs, "k").Async()
	ctx := context.Background()

	futures := make([]*Future, 0, 8)
	for i := 0; i < 8; i++ {
		futures = append(futures, async.DeleteCollection(ctx, fmt.Sprintf("c%d", i)))
	}

	results, err := AwaitAll(ctx, futures...)
	require.NoError(t, err)
	require.Len(t, results, 8)
	for _, res := range results {
		assert.Equal(t, http.StatusOK, res.StatusCode())
	}
	assert.Equal(t, 8, rs.count())

	rs.mu.Lock()
	names := make([]any, 0, 8)
	for _, req := range rs.requests {
		names = append(names, req.Body["collection_name"])
	}
	rs.mu.Unlock()
	assert.ElementsMatch(t, []any{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"}, names)
}

func TestAwaitAllKeepsArgumentOrder(t *testing.T) {
	async, transport := newMockAsync(t)
	release := make(chan struct{})

	transport.EXPECT().Post(gomock.Any(), "search", gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte) (*http.Response, []byte, error) {
			<-release
			return okResponse("hits")
		})
	transport.EXPECT().Post(gomock.Any(), "createcollection", gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte) (*http.Response, []byte, error) {
			return okResponse("created")
		})

	ctx := context.Background()
	slow := async.Search(ctx, SearchRequest{CollectionName: "docs", Vector: []float64{1}})
	fast := async.CreateCollection(ctx, "docs", "cosine", 1)

	// the second call completes while the first is still in flight
	_, err := fast.Await(ctx)
	require.NoError(t, err)
	select {
	case <-slow.Done():
		t.Fatal("search finished before it was released")
	default:
	}
	close(release)

	results, err := AwaitAll(ctx, slow, fast)
	require.NoError(t, err)
	assert.Equal(t, "hits", results[0].Value)
	assert.Equal(t, "created", results[1].Value)
}

func TestAsyncJSONDecoding(t *testing.T) {
	async, transport := newMockAsync(t)
	transport.EXPECT().Post(gomock.Any(), "classify", gomock.Any()).Return(okResponse(`{"label":"news"}`))

	res, err := async.Classify(context.Background(), "docs", "topic", []float64{1}).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"label": "news"}, res.Value)
}

func TestAsyncArgumentMismatch(t *testing.T) {
	async, _ := newMockAsync(t)

	f := async.AddPointBatch(context.Background(), "docs", [][]float64{{1}, {2}}, []string{"a"}, nil)
	res, err := f.Await(context.Background())
	assert.Nil(t, res)
	assert.True(t, IsArgumentMismatchError(err))
}

func TestAwaitRespectsContext(t *testing.T) {
	async, transport := newMockAsync(t)
	release := make(chan struct{})
	transport.EXPECT().Post(gomock.Any(), "listcollections", gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte) (*http.Response, []byte, error) {
			<-release
			return okResponse(`[]`)
		})

	f := async.ListCollections(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	res, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{}, res.Value)
}

func TestAsyncCancellationReachesTransport(t *testing.T) {
	async, transport := newMockAsync(t)
	transport.EXPECT().Post(gomock.Any(), "addpoint", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []byte) (*http.Response, []byte, error) {
			<-ctx.Done()
			return nil, nil, fmt.Errorf("%w: %w", ErrTransport, ctx.Err())
		})

	ctx, cancel := context.WithCancel(context.Background())
	f := async.AddPoint(ctx, "docs", []float64{1}, nil, true)
	cancel()

	_, err := f.Await(context.Background())
	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwaitAllReturnsFirstError(t *testing.T) {
	async, transport := newMockAsync(t)
	cause := errors.New("connection reset")
	transport.EXPECT().Post(gomock.Any(), "deletecollection", gomock.Any()).
		Return(nil, nil, fmt.Errorf("%w: %w", ErrTransport, cause))
	transport.EXPECT().Post(gomock.Any(), "addpointbatch", gomock.Any()).Return(okResponse(`{}`))

	ctx := context.Background()
	ok := async.AddPoints(ctx, "docs", []Point{{Vector: []float64{1}}})
	failed := async.DeleteCollection(ctx, "docs")

	_, err := AwaitAll(ctx, ok, failed)
	assert.ErrorIs(t, err, cause)

	// let the remaining call finish before the controller checks expectations
	<-ok.Done()
}

func TestAsyncSharesClientLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Close().Return(nil).Times(1)

	client, err := NewClientWithTransport(FromHost("https://vectors.internal"), transport)
	require.NoError(t, err)
	async := client.Async()

	assert.Same(t, client, async.Client())
	assert.Equal(t, "https://vectors.internal:443", async.BaseURL())
	require.NoError(t, async.Close())
	require.NoError(t, client.Close())
}

func TestNewAsyncClient(t *testing.T) {
	_, err := NewAsyncClient(FromHost("bad host:1"))
	assert.True(t, IsHostResolutionError(err))

	async, err := NewAsyncClient(DefaultConfig())
	require.NoError(t, err)
	defer async.Close()
	assert.Equal(t, "http://127.0.0.1:8080", async.BaseURL())
}

func TestFuturesFromManyGoroutines(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, "text/plain", "ok")
	async := newTestClient(t, rs, "").Async()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := async.Search(context.Background(), SearchRequest{CollectionName: "docs"}).Await(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "ok", res.Value)
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, rs.count())
}
