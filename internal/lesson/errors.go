package lesson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrRequestFailed is the single category every Generate failure belongs to.
// Use errors.Is to test for it; the concrete types below carry the detail.
var ErrRequestFailed = errors.New("lesson request failed")

// ErrTransport indicates the request never produced an HTTP response
// (connection refused, DNS failure, context cancelled).
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	return e.Err.Error()
}

func (e *ErrTransport) Unwrap() error { return e.Err }

func (e *ErrTransport) Is(target error) bool { return target == ErrRequestFailed }

// ErrServer indicates the backend answered with a non-success status.
type ErrServer struct {
	StatusCode int
	// Reason is the status reason phrase, e.g. "Internal Server Error".
	Reason string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("Server error: %s", e.Reason)
}

func (e *ErrServer) Is(target error) bool { return target == ErrRequestFailed }

// ErrMalformedResponse indicates a success status whose body is not valid
// JSON or is null.
type ErrMalformedResponse struct {
	Body json.RawMessage
	Err  error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

func (e *ErrMalformedResponse) Is(target error) bool { return target == ErrRequestFailed }
