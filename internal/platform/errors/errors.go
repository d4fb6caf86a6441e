// Package errors provides structured internal error handling.
//
// It is deliberately narrow: it classifies infrastructure and storage
// failures (§7 "internal errors") so the gateway can decide, without
// inspecting message text, whether a failure is safe to retry and whether it
// should ever reach a client. The wire-facing enumerations — violation
// codes, protocol error codes, lobby error codes — live next to the
// components that raise them (internal/catan/violation, internal/gateway,
// internal/lobby) since those are part of the protocol contract, not
// internal plumbing.
package errors

// Domain identifies the error namespace for structured logging.
const Domain = "github.com/btuckerc/traderoads"

// Error is the internal error type with structured metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a simple internal error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata creates an internal error with structured context.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap creates an internal error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}
