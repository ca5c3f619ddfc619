package vreedb

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// Operation names one remote call of the vreedb service.
type Operation string

const (
	OpSearch           Operation = "search"
	OpCreateCollection Operation = "create_collection"
	OpListCollections  Operation = "list_collections"
	OpDeleteCollection Operation = "delete_collection"
	OpAddPoint         Operation = "add_point"
	OpAddPointBatch    Operation = "add_point_batch"
	OpClassify         Operation = "classify"
)

// DecodeMode selects how a response body is exposed in Result.Value.
type DecodeMode int

const (
	// DecodeText exposes the body as a string.
	DecodeText DecodeMode = iota
	// DecodeJSON exposes the body as a decoded JSON document.
	DecodeJSON
)

const apiKeyField = "api_key"

// operationSpec is the wire contract of one operation. Fields lists the body
// keys besides api_key.
type operationSpec struct {
	Path   string
	Fields []string
	Decode DecodeMode
}

// operations is the whole service surface. search and create_collection
// answer with plain text, the others with JSON.
var operations = map[Operation]operationSpec{
	OpSearch: {
		Path:   "search",
		Fields: []string{"collection_name", "limit", "vector", "filter", "index", "max_distance_percent", "get_vectors", "get_id"},
		Decode: DecodeText,
	},
	OpCreateCollection: {
		Path:   "createcollection",
		Fields: []string{"name", "dist_func", "dimensions"},
		Decode: DecodeText,
	},
	OpListCollections: {
		Path:   "listcollections",
		Fields: nil,
		Decode: DecodeJSON,
	},
	OpDeleteCollection: {
		Path:   "deletecollection",
		Fields: []string{"collection_name"},
		Decode: DecodeJSON,
	},
	OpAddPoint: {
		Path:   "addpoint",
		Fields: []string{"collection_name", "vector", "payload", "wait"},
		Decode: DecodeJSON,
	},
	OpAddPointBatch: {
		Path:   "addpointbatch",
		Fields: []string{"collection_name", "points"},
		Decode: DecodeJSON,
	},
	OpClassify: {
		Path:   "classify",
		Fields: []string{"collection_name", "classifier_name", "vector"},
		Decode: DecodeJSON,
	},
}

// Known reports whether op is one of the Op constants above.
func (op Operation) Known() bool {
	_, ok := operations[op]
	return ok
}

// Path returns the relative request path of op, or "" when op is not Known.
func (op Operation) Path() string { return operations[op].Path }

// DecodeMode returns how the response of op is exposed in Result.Value.
// An op that is not Known reports DecodeText.
func (op Operation) DecodeMode() DecodeMode { return operations[op].Decode }

// Fields returns the body keys of op, excluding api_key, or nil when op is
// not Known.
func (op Operation) Fields() []string { return slices.Clone(operations[op].Fields) }

// call is a fully built request waiting to be executed.
type call struct {
	op       Operation
	resource string
	fields   map[string]any
	err      error
}

func searchCall(req SearchRequest) call {
	return call{op: OpSearch, resource: req.CollectionName, fields: map[string]any{
		"collection_name":      req.CollectionName,
		"limit":                req.Limit,
		"vector":               req.Vector,
		"filter":               req.Filter,
		"index":                req.Index,
		"max_distance_percent": req.MaxDistancePercent,
		"get_vectors":          req.GetVectors,
		"get_id":               req.GetID,
	}}
}

func createCollectionCall(name, distFunc string, dimensions int) call {
	return call{op: OpCreateCollection, resource: name, fields: map[string]any{
		"name":       name,
		"dist_func":  distFunc,
		"dimensions": dimensions,
	}}
}

func listCollectionsCall() call {
	return call{op: OpListCollections, fields: map[string]any{}}
}

func deleteCollectionCall(name string) call {
	return call{op: OpDeleteCollection, resource: name, fields: map[string]any{
		"collection_name": name,
	}}
}

func addPointCall(collection string, vector []float64, payload map[string]any, wait bool) call {
	return call{op: OpAddPoint, resource: collection, fields: map[string]any{
		"collection_name": collection,
		"vector":          vector,
		"payload":         payload,
		"wait":            wait,
	}}
}

func addPointsCall(collection string, points []Point) call {
	if points == nil {
		points = []Point{}
	}
	return call{op: OpAddPointBatch, resource: collection, fields: map[string]any{
		"collection_name": collection,
		"points":          points,
	}}
}

func addPointBatchCall(collection string, vectors [][]float64, ids []string, payloads []map[string]any) call {
	points, err := ZipPoints(vectors, ids, payloads)
	if err != nil {
		return call{op: OpAddPointBatch, resource: collection, err: err}
	}
	return addPointsCall(collection, points)
}

func classifyCall(collection, classifier string, vector []float64) call {
	return call{op: OpClassify, resource: collection, fields: map[string]any{
		"collection_name": collection,
		"classifier_name": classifier,
		"vector":          vector,
	}}
}

// ZipPoints pairs vectors, ids and payloads index-wise.
//
// A nil ids or payloads slice means "absent for every point". Any non-nil
// slice whose length differs from len(vectors) yields an
// *ArgumentMismatchError.
func ZipPoints(vectors [][]float64, ids []string, payloads []map[string]any) ([]Point, error) {
	idsLen, payloadsLen := -1, -1
	if ids != nil {
		idsLen = len(ids)
	}
	if payloads != nil {
		payloadsLen = len(payloads)
	}
	if (idsLen >= 0 && idsLen != len(vectors)) || (payloadsLen >= 0 && payloadsLen != len(vectors)) {
		return nil, &ArgumentMismatchError{Vectors: len(vectors), IDs: idsLen, Payloads: payloadsLen}
	}

	points := make([]Point, len(vectors))
	for i, v := range vectors {
		points[i].Vector = v
		if ids != nil {
			points[i].ID = ids[i]
		}
		if payloads != nil {
			points[i].Payload = payloads[i]
		}
	}
	return points, nil
}

// checkFields guards against a builder drifting from the operation table.
func (s operationSpec) checkFields(op Operation, fields map[string]any) error {
	if len(fields) != len(s.Fields) {
		return fmt.Errorf("%w: %s expects fields %v", ErrEncode, op, s.Fields)
	}
	for _, f := range s.Fields {
		if _, ok := fields[f]; !ok {
			return fmt.Errorf("%w: %s is missing field %q", ErrEncode, op, f)
		}
	}
	return nil
}

// execute is the single request path shared by Client and AsyncClient: build
// the body, inject api_key, POST, read and decode.
func (c *Client) execute(ctx context.Context, cl call) (*Result, error) {
	start := time.Now()
	spec, ok := operations[cl.op]
	if !ok {
		return nil, fmt.Errorf("vreedb: unknown operation %q", cl.op)
	}

	ctx, span := c.startSpan(ctx, cl)
	res, size, err := c.roundTrip(ctx, spec, cl)
	c.endSpan(span, res, err)
	c.observeOperation(cl, spec.Path, time.Since(start), res, size, err)

	return res, err
}

func (c *Client) roundTrip(ctx context.Context, spec operationSpec, cl call) (*Result, int64, error) {
	if c.closed.Load() {
		return nil, 0, fmt.Errorf("%w: %s", ErrClosed, cl.op)
	}
	if cl.err != nil {
		return nil, 0, cl.err
	}
	if err := spec.checkFields(cl.op, cl.fields); err != nil {
		return nil, 0, err
	}

	payload := make(map[string]any, len(cl.fields)+1)
	for k, v := range cl.fields {
		payload[k] = v
	}
	payload[apiKeyField] = optionalString(c.apiKey)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrEncode, cl.op, err)
	}

	resp, data, err := c.transport.Post(ctx, spec.Path, body)
	size := int64(len(body) + len(data))
	if err != nil {
		return nil, size, err
	}

	res := &Result{Response: resp, Body: data}
	switch spec.Decode {
	case DecodeJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return res, size, fmt.Errorf("%w: %s (status %d): %w", ErrDecode, cl.op, res.StatusCode(), err)
		}
		res.Value = v
	default:
		res.Value = string(data)
	}
	return res, size, nil
}
