package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client failures.
type ErrorKind int

const (
	// KindTransport indicates a network or I/O fault before a response
	// status was obtainable (DNS, connection refused, stream error,
	// malformed target address).
	KindTransport ErrorKind = iota
	// KindServer indicates a response with status >= 400.
	KindServer
	// KindConfiguration indicates a construction-time fault.
	KindConfiguration
	// KindTooManyRedirects indicates the redirect chain exceeded the
	// configured hop limit.
	KindTooManyRedirects
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindConfiguration:
		return "configuration"
	case KindTooManyRedirects:
		return "too_many_redirects"
	default:
		return "unknown"
	}
}

// Error is the unified client failure. Callers always receive exactly
// one of {decoded value, *Error}; nothing is partially returned.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is the HTTP status code (0 when no status was obtained).
	StatusCode int
	// Message describes the failure.
	Message string
	// Payload is the structured error body decoded from the response,
	// when the content type was decodable. May be nil.
	Payload map[string]any
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("s4: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("s4: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport-level failure.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewServerError creates a failure for an error response, carrying the
// status code and the decoded payload when one was available.
func NewServerError(statusCode int, payload map[string]any) *Error {
	return &Error{
		Kind:       KindServer,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("server returned response code %d", statusCode),
		Payload:    payload,
	}
}

// NewConfigurationError creates a construction-time failure.
func NewConfigurationError(msg string, err error) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: msg,
		Err:     err,
	}
}

// NewTooManyRedirectsError creates a failure for a redirect chain that
// exceeded the hop limit.
func NewTooManyRedirectsError(limit int) *Error {
	return &Error{
		Kind:    KindTooManyRedirects,
		Message: fmt.Sprintf("stopped after %d redirects", limit),
	}
}

// newReadError wraps a secondary fault hit while reading an error
// response body. The original status code is preserved so the caller
// still learns what the server answered.
func newReadError(statusCode int, err error) *Error {
	return &Error{
		Kind:       KindServer,
		StatusCode: statusCode,
		Message:    "error communicating with server",
		Err:        err,
	}
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsServer checks if an error is a server failure.
func IsServer(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServer
}

// IsConfiguration checks if an error is a configuration failure.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfiguration
}

// IsTooManyRedirects checks if an error is a redirect-limit failure.
func IsTooManyRedirects(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTooManyRedirects
}

// StatusCode extracts the HTTP status code from a client failure, or 0
// when the error is not a client failure or carries no status.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
