// Package serrors attaches a semantic kind to errors so that services can say
// what went wrong (not found, conflict, invariant broken) and transports can
// map it to a status without string matching.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel naming a category of failure. Only NewKind creates one.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind returns a new Kind whose Error() is name.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used across the backoffice. Their names double as the "code" field of
// API error bodies.
var (
	// ErrNotFound: a region, locale, account or order does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest: the input failed validation.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict: a unique field is already taken.
	ErrConflict = NewKind("CONFLICT")
	// ErrInvalidState: the input is well formed but the write would break a
	// catalog invariant, e.g. removing a region's default locale.
	ErrInvalidState = NewKind("INVALID_STATE")
	ErrInternal     = NewKind("INTERNAL")
	// ErrTimeout: the store did not answer before the deadline, including lock waits.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable: the store or the event bus cannot be reached.
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error carries a Kind, an optional cause, an optional message and optional
// field violations. errors.Is and errors.As match both the kind and the cause.
//
// Error() renders "<msg>: <cause>", falling back to whichever of the two is
// set and finally to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string

	violations []FieldViolation
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

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
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the kind of e or matches its cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As extracts either the kind or a value from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind { return e.kind }

// Message is the text passed to With or Wrap, without the cause.
func (e *Error) Message() string { return e.msg }

func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost *Error in err's chain, a bare Kind
// if err is one, or nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}
