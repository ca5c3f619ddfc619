package vreedb

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AsyncClient exposes the same operations as Client but returns immediately
// with a Future. Each call runs on its own goroutine; concurrent calls may
// complete in any order.
//
// Cancellation is the caller's: cancel the context passed to the call.
//
//	async := client.Async()
//	f1 := async.Search(ctx, req1)
//	f2 := async.Search(ctx, req2)
//	results, err := vreedb.AwaitAll(ctx, f1, f2)
type AsyncClient struct {
	client *Client
}

// NewAsyncClient is NewClient(cfg).Async().
func NewAsyncClient(cfg Config) (*AsyncClient, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return c.Async(), nil
}

// Client returns the blocking client sharing this transport.
func (a *AsyncClient) Client() *Client { return a.client }

// BaseURL returns the resolved scheme://hostname:port.
func (a *AsyncClient) BaseURL() string { return a.client.BaseURL() }

// Close closes the shared client.
func (a *AsyncClient) Close() error { return a.client.Close() }

// Future is the pending outcome of an asynchronous call.
type Future struct {
	done   chan struct{}
	result *Result
	err    error
}

// Done is closed once the call has finished.
func (f *Future) Done() <-chan struct{} { return f.done }

// Await blocks until the call finishes or ctx is done. Giving up on ctx does
// not cancel the call itself.
func (f *Future) Await(ctx context.Context) (*Result, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *AsyncClient) submit(ctx context.Context, cl call) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result, f.err = a.client.execute(ctx, cl)
	}()
	return f
}

// AwaitAll waits for every future and returns their results in argument
// order. The first error stops the wait and is returned.
func AwaitAll(ctx context.Context, futures ...*Future) ([]*Result, error) {
	results := make([]*Result, len(futures))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		g.Go(func() error {
			res, err := f.Await(gctx)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Search is the asynchronous Client.Search.
func (a *AsyncClient) Search(ctx context.Context, req SearchRequest) *Future {
	return a.submit(ctx, searchCall(req))
}

// CreateCollection is the asynchronous Client.CreateCollection.
func (a *AsyncClient) CreateCollection(ctx context.Context, name, distFunc string, dimensions int) *Future {
	return a.submit(ctx, createCollectionCall(name, distFunc, dimensions))
}

// ListCollections is the asynchronous Client.ListCollections.
func (a *AsyncClient) ListCollections(ctx context.Context) *Future {
	return a.submit(ctx, listCollectionsCall())
}

// DeleteCollection is the asynchronous Client.DeleteCollection.
func (a *AsyncClient) DeleteCollection(ctx context.Context, name string) *Future {
	return a.submit(ctx, deleteCollectionCall(name))
}

// AddPoint is the asynchronous Client.AddPoint.
func (a *AsyncClient) AddPoint(ctx context.Context, collection string, vector []float64, payload map[string]any, wait bool) *Future {
	return a.submit(ctx, addPointCall(collection, vector, payload, wait))
}

// AddPointBatch is the asynchronous Client.AddPointBatch. A length mismatch
// resolves the future with ErrArgumentMismatch without sending anything.
func (a *AsyncClient) AddPointBatch(ctx context.Context, collection string, vectors [][]float64, ids []string, payloads []map[string]any) *Future {
	return a.submit(ctx, addPointBatchCall(collection, vectors, ids, payloads))
}

// AddPoints is the asynchronous Client.AddPoints.
func (a *AsyncClient) AddPoints(ctx context.Context, collection string, points []Point) *Future {
	return a.submit(ctx, addPointsCall(collection, points))
}

// Classify is the asynchronous Client.Classify.
func (a *AsyncClient) Classify(ctx context.Context, collection, classifier string, vector []float64) *Future {
	return a.submit(ctx, classifyCall(collection, classifier, vector))
}
