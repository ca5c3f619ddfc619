package vreedb

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Point is a vector plus an optional identifier and payload.
// The client does not check the vector length against the collection.
type Point struct {
	Vector  []float64
	ID      string
	Payload map[string]any
}

// MarshalJSON always writes all three keys; an empty ID is written as null.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Vector  []float64      `json:"vector"`
		ID      *string        `json:"id"`
		Payload map[string]any `json:"payload"`
	}{
		Vector:  p.Vector,
		ID:      optionalString(p.ID),
		Payload: p.Payload,
	})
}

// SearchRequest is the input of a nearest-neighbor search.
// Nil Limit, Filter and Index are sent as null.
type SearchRequest struct {
	CollectionName string

	// Limit caps the number of hits. Nil leaves the choice to the server.
	Limit *int

	Vector []float64

	// Filter is a list of filter mappings interpreted by the server.
	Filter []map[string]any

	// Index selects index options for the search.
	Index map[string]any

	// MaxDistancePercent restricts hits to this distance, in [0, 100].
	MaxDistancePercent float64

	// GetVectors asks the server to include stored vectors in the hits.
	GetVectors bool

	// GetID asks the server to include point ids in the hits.
	GetID bool
}

// Limit returns a pointer to n, for SearchRequest.Limit.
func Limit(n int) *int { return &n }

// Result is the normalized outcome of every operation.
//
// Response is the raw HTTP response; its Body has already been read into Body
// and replaced by an in-memory reader. Value is either the body as a string or
// the decoded JSON document, depending on the operation (see Operation.DecodeMode).
// A non-2xx status is not an error: inspect StatusCode or call Err.
type Result struct {
	Response *http.Response
	Body     []byte
	Value    any
}

// StatusCode returns the HTTP status, or 0 when there is no response.
func (r *Result) StatusCode() int {
	if r == nil || r.Response == nil {
		return 0
	}
	return r.Response.StatusCode
}

// IsSuccess reports a 2xx status.
func (r *Result) IsSuccess() bool {
	code := r.StatusCode()
	return code >= 200 && code < 300
}

// Text returns the raw body as a string regardless of the decode mode.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Decode unmarshals the raw body into out. A nil Result has nothing to
// decode and yields ErrDecode.
func (r *Result) Decode(out any) error {
	if r == nil {
		return fmt.Errorf("%w: no response", ErrDecode)
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Err returns a *RemoteError for a non-2xx status and nil otherwise.
// Without a response (nil Result after a failed call) there is no remote
// status to report and Err is nil; the call's own error describes the failure.
func (r *Result) Err() error {
	if r == nil || r.Response == nil || r.IsSuccess() {
		return nil
	}
	return &RemoteError{StatusCode: r.StatusCode(), Body: r.Text()}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
