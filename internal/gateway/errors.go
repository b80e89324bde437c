package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a failed upstream call.
type Kind int

const (
	// KindUnknown is reported for errors that did not come from the gateway.
	KindUnknown Kind = iota
	// KindNetwork covers transport failures, timeouts and an open circuit.
	KindNetwork
	// KindNotFound is a 404 from the food API.
	KindNotFound
	// KindServer is any other non-2xx answer.
	KindServer
	// KindDecode means the response body could not be read as expected.
	KindDecode
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrNetwork  = errors.New("gateway: network error")
	ErrNotFound = errors.New("gateway: not found")
	ErrServer   = errors.New("gateway: server error")
	ErrDecode   = errors.New("gateway: invalid response")
)

// String returns the metric/log label of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_error"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server_error"
	case KindDecode:
		return "decode_error"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	case KindDecode:
		return ErrDecode
	default:
		return nil
	}
}

// Error is returned by every failed Client call.
type Error struct {
	Op         string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("gateway %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf extracts the Kind of a gateway error, or KindUnknown.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return KindUnknown
}

// isBreakerFailure reports whether an error says something about upstream health.
// A missing food is a normal answer.
func isBreakerFailure(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindServer:
		return true
	default:
		return false
	}
}
