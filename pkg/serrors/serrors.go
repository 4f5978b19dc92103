// Package serrors provides semantic error kinds shared by the contract
// checker, the docs server and the response envelopes. A kind answers "what
// went wrong" independently of the concrete cause, and maps onto an HTTP
// status when the error has to leave the process.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct {
	s      string
	status int
}

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Errors of
// this kind are reported with status when they cross an HTTP boundary.
func NewKind(name string, status int) Kind { return kind{s: name, status: status} }

var (
	// ErrNotFound indicates the requested entity (e.g. a contract kind) does not exist.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrBadRequest indicates a payload that does not satisfy its contract.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrInternal indicates an unexpected failure inside this process.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT", http.StatusGatewayTimeout)
	// ErrRemote indicates the remote service answered with an error envelope.
	ErrRemote = NewKind("REMOTE", http.StatusBadGateway)
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is and errors.As match either the kind or the wrapped cause.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the first kind found in err's chain, or ErrInternal when err
// carries none. It returns nil for a nil err.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// StatusCode returns the HTTP status associated with err's kind.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if k, ok := KindOf(err).(kind); ok && k.status != 0 {
		return k.status
	}

	return http.StatusInternalServerError
}

// PublicMessage returns a message that is safe to show to callers: the
// message of the outermost *Error when set, the kind name otherwise. Causes of
// internal errors are never exposed.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	k := KindOf(err)
	if errors.Is(k, ErrInternal) {
		return "internal error"
	}
	var se *Error
	if errors.As(err, &se) && (se.msg != "" || se.err != nil) {
		return se.Error()
	}

	return k.Error()
}
