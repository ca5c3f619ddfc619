// Package vreedb is a client for the vreedb vector database.
//
// # Overview
//
// The service is a JSON-over-HTTP API: every operation is a POST of a flat JSON
// object to a fixed path on the server's base URL. The client turns a loosely
// specified host into that base URL once, injects the API key into every body
// and hands the response back as a *Result.
//
//	client, err := vreedb.NewClient(vreedb.FromHost("myhost:9000").WithAPIKey(key))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.BaseURL() // "http://myhost:9000"
//
//	res, err := client.CreateCollection(ctx, "docs", "cosine", 128)
//	if err != nil {
//	    return err // network failure, timeout, cancelled context
//	}
//	if !res.IsSuccess() {
//	    return res.Err() // non-2xx is data, not an error
//	}
//
// # Host resolution
//
// ResolveHost fills in what the host string leaves out:
//
//	""                 -> http://127.0.0.1:8080
//	"myhost"           -> http://myhost:8080
//	"myhost:9000"      -> http://myhost:9000
//	"https://myhost"   -> https://myhost:443
//	"ftp://myhost"     -> ftp://myhost:8080
//
// Only an exact "http" or "https" scheme selects its own default port.
//
// # Operations
//
//	Operation          Path              Result.Value
//	search             search            text
//	create_collection  createcollection  text
//	list_collections   listcollections   JSON
//	delete_collection  deletecollection  JSON
//	add_point          addpoint          JSON
//	add_point_batch    addpointbatch     JSON
//	classify           classify          JSON
//
// The text/JSON split mirrors what the server returns for each path. Result
// always keeps the raw body, so Text and Decode work for every operation.
//
// # Blocking and asynchronous use
//
// Client blocks until the response is read. AsyncClient, obtained with
// Client.Async, starts the same calls on goroutines and returns a *Future;
// AwaitAll gathers several. Both go through one shared request path.
//
// # Errors
//
//   - ErrHostResolution, ErrTransportInit: construction failed, no client.
//   - ErrTransport: the call did not get a response.
//   - ErrArgumentMismatch: AddPointBatch got sequences of different lengths.
//   - ErrDecode: a JSON operation received a body that is not JSON.
//   - *RemoteError (via Result.Err): the server answered with a non-2xx status.
//
// Nothing is retried and nothing is logged on the error path.
//
// # Observability and Fx
//
// WithObserver reports every finished call to an observability.Observer such as
// *metrics.Metrics. WithTracer opens one span per call and WithLogger records
// lifecycle events. FXModule wires whatever of these the container provides.
package vreedb
