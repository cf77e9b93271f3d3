// Package apperror classifies failures so the HTTP layer can map them to
// status codes without string matching.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	// KindInvariant marks broken data integrity (missing Audius platform,
	// missing comparison). Never rendered to users in detail.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvariant:
		return "invariant_violation"
	default:
		return "internal"
	}
}

// Error is the generic classified error
type Error struct {
	kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Kind() Kind { return e.kind }

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, Message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{kind: kind, Message: message, Err: err}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

func Unauthorized() *Error {
	return New(KindUnauthorized, "Unauthorized")
}

func Internal(err error, message string) *Error {
	return Wrap(KindInternal, err, message)
}

type kinded interface {
	Kind() Kind
}

// KindOf returns the kind of the first classified error in err's chain.
// Unclassified errors are internal.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}

// PublicMessage is the text safe to show a client. Internal and invariant
// failures collapse to a generic message; the detail goes to the log.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindInternal, KindInvariant:
		return "Internal server error"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
