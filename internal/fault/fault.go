// Package fault defines the typed failures returned by the core services.
//
// Every service operation either succeeds or returns an *Error carrying
// one of the kinds below. The HTTP layer maps kinds to status codes; the
// core never maps to transport concerns itself and never swallows a
// failed invariant.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure.
type Kind string

const (
	// InvalidInput: malformed or missing required fields. Caller error,
	// never retried.
	InvalidInput Kind = "invalid_input"

	// NotFound: a referenced entity does not exist.
	NotFound Kind = "not_found"

	// Forbidden: authenticated but not permitted (wrong household,
	// wrong role, wrong ownership).
	Forbidden Kind = "forbidden"

	// AlreadyMember: the operation would violate a membership
	// invariant, e.g. joining while already in a household.
	AlreadyMember Kind = "already_member"

	// InvalidOperation: the operation is legal in general but not in
	// the entity's current state, e.g. the admin leaving.
	InvalidOperation Kind = "invalid_operation"

	// Conflict: a unique-field collision (invite code, email).
	Conflict Kind = "conflict"

	// StoreFailure: the record store reported an I/O error. Safe to
	// retry for reads and idempotent writes.
	StoreFailure Kind = "store_failure"
)

// Error is a kinded service failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an *Error with the given kind and message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error with the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Store wraps a record-store error as a StoreFailure.
func Store(cause error, format string, args ...any) *Error {
	return Wrap(StoreFailure, cause, format, args...)
}

// KindOf returns the kind of err, or "" if err carries no *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
