package vreedb

import (
	"errors"
	"fmt"
)

// Errors returned by the vreedb client. Concrete failures wrap one of these,
// so callers should test with errors.Is or the IsXxxError helpers.
var (
	// ErrHostResolution is returned when the host string cannot be parsed into
	// a base URL (bad port, invalid characters). Fatal at construction.
	ErrHostResolution = errors.New("vreedb: cannot resolve host")

	// ErrTransportInit is returned when the HTTP transport cannot be built,
	// e.g. for a negative timeout. Fatal at construction.
	ErrTransportInit = errors.New("vreedb: cannot initialize transport")

	// ErrTransport is returned for network-level failures during a call:
	// connection refused, DNS failure, timeout, cancelled context.
	ErrTransport = errors.New("vreedb: transport error")

	// ErrArgumentMismatch is returned by batch insertion when the vectors, ids
	// and payloads sequences have different lengths.
	ErrArgumentMismatch = errors.New("vreedb: argument length mismatch")

	// ErrEncode is returned when a request payload cannot be marshalled to JSON.
	ErrEncode = errors.New("vreedb: cannot encode request")

	// ErrDecode is returned when an operation that expects JSON receives a body
	// that is not valid JSON. The Result is still returned alongside it.
	ErrDecode = errors.New("vreedb: cannot decode response")

	// ErrClosed is returned for calls made after Close.
	ErrClosed = errors.New("vreedb: client is closed")

	// ErrRemote is wrapped by *RemoteError. The client never returns it on its
	// own; it is only produced by Result.Err.
	ErrRemote = errors.New("vreedb: remote returned an error status")
)

// RemoteError describes a well-formed response with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("vreedb: remote returned status %d: %s", e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error { return ErrRemote }

// ArgumentMismatchError reports the lengths that did not line up.
// A length of -1 means the sequence was nil and therefore not checked.
type ArgumentMismatchError struct {
	Vectors  int
	IDs      int
	Payloads int
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("%s: %d vectors, %d ids, %d payloads", ErrArgumentMismatch, e.Vectors, e.IDs, e.Payloads)
}

func (e *ArgumentMismatchError) Unwrap() error { return ErrArgumentMismatch }

// IsHostResolutionError reports whether err is a host resolution failure.
func IsHostResolutionError(err error) bool {
	return errors.Is(err, ErrHostResolution)
}

// IsTransportInitError reports whether err is a transport construction failure.
func IsTransportInitError(err error) bool {
	return errors.Is(err, ErrTransportInit)
}

// IsTransportError reports whether err is a network-level call failure.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsArgumentMismatchError reports whether err is a batch length mismatch.
func IsArgumentMismatchError(err error) bool {
	return errors.Is(err, ErrArgumentMismatch)
}

// IsDecodeError reports whether err is a response decoding failure.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsClosedError reports whether err was caused by using a closed client.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsRemoteError reports whether err is a *RemoteError.
func IsRemoteError(err error) bool {
	return errors.Is(err, ErrRemote)
}
