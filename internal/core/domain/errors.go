package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent transport-independent failure kinds.
// These are distinct from the wrapped transport diagnostics.
var (
	// ErrPlatformUnsupported indicates the native-call transport was
	// invoked on a platform the engine's shared library does not
	// ship for.
	ErrPlatformUnsupported = errors.New("transport not supported on this platform")

	// ErrNotSupported indicates an operation the transport cannot
	// express at all. Distinct from search options, which adapters
	// silently ignore.
	ErrNotSupported = errors.New("operation not supported by this transport")

	// ErrNotConnected indicates an operation ran before a successful
	// connect. Adapters resolve this internally by connecting
	// implicitly; callers normally never observe it.
	ErrNotConnected = errors.New("not connected")

	// ErrInvalidInput indicates malformed configuration or arguments.
	ErrInvalidInput = errors.New("invalid input")
)

// ConnectionError reports a failed transport probe or handshake.
// It carries the underlying transport's diagnostic text.
type ConnectionError struct {
	// Transport is the adapter identifier ("cli", "sdk", "http").
	Transport string

	// Cause is the underlying transport failure.
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: connection failed: %v", e.Transport, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ConnectionError) Unwrap() error { return e.Cause }

// SearchError reports a failed query execution or an unparseable
// response. Partial results are never returned alongside it.
type SearchError struct {
	// Transport is the adapter identifier ("cli", "sdk", "http").
	Transport string

	// Cause is the underlying failure: non-zero exit, native error
	// code or malformed response.
	Cause error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: search failed: %v", e.Transport, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *SearchError) Unwrap() error { return e.Cause }

// IsConnectionError reports whether err wraps a ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsSearchError reports whether err wraps a SearchError.
func IsSearchError(err error) bool {
	var se *SearchError
	return errors.As(err, &se)
}

// IsPlatformUnsupported reports whether err stems from invoking the
// native transport on an unsupported platform.
func IsPlatformUnsupported(err error) bool {
	return errors.Is(err, ErrPlatformUnsupported)
}
