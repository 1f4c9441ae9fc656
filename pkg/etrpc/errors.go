package etrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error object for JSON-RPC 2.0 errors. Node-supplied errors are decoded into
// it verbatim, local input and transport failures are represented by it as
// well, so that every failed call ends up with the same Message and Code pair.
type Error struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`

	// kind is one of the local failure sentinels, nil for node errors.
	kind error
}

const (
	// TransportErrorCode is used for failures that happened before any
	// JSON-RPC answer was obtained: dial errors, timeouts, bad HTTP status,
	// undecodable or malformed responses.
	TransportErrorCode = -1
	// InputErrorCode is used for invalid user input detected before any
	// request is made.
	InputErrorCode = -2
)

var (
	// ErrTransport matches (via errors.Is) all transport-level failures.
	ErrTransport = errors.New("transport failure")
	// ErrInvalidInput matches (via errors.Is) all input validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidResponse is a transport failure returned for responses that
	// have neither result nor error.
	ErrInvalidResponse = NewTransportError("invalid response shape")
)

// NewError is an Error constructor that takes Error contents from its
// parameters. Errors created this way are treated as node errors.
func NewError(code int64, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewTransportError creates a new transport error with TransportErrorCode
// and a formatted message.
func NewTransportError(format string, args ...any) *Error {
	return &Error{
		Code:    TransportErrorCode,
		Message: fmt.Sprintf(format, args...),
		kind:    ErrTransport,
	}
}

// NewInputError creates a new input error with InputErrorCode and a
// formatted message.
func NewInputError(format string, args ...any) *Error {
	return &Error{
		Code:    InputErrorCode,
		Message: fmt.Sprintf(format, args...),
		kind:    ErrInvalidInput,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// Unwrap returns the failure class sentinel for local errors and nil for
// node-supplied ones.
func (e *Error) Unwrap() error {
	return e.kind
}

// Is makes errors.Is(a, b) true for two transport (or two input) errors
// with the same code and message, it's mostly useful for ErrInvalidResponse.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.Code == t.Code && e.Message == t.Message
}

// IsApplication returns true if err is a node-supplied JSON-RPC error.
func IsApplication(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == nil
}

// AsError converts any error into *Error. Errors that are not *Error already
// are considered to be transport failures.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:    TransportErrorCode,
		Message: err.Error(),
		kind:    ErrTransport,
	}
}
