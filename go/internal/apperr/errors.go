// Package apperr defines the failure kinds surfaced by the team membership
// lifecycle. Every kind is recoverable by the caller and scoped to a single
// operation.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindForbidden        Kind = "FORBIDDEN"
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindAlreadyMember    Kind = "ALREADY_MEMBER"
	KindTeamFull         Kind = "TEAM_FULL"
	KindDuplicateRequest Kind = "DUPLICATE_REQUEST"
	KindInvalidState     Kind = "INVALID_STATE"
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindRateLimited      Kind = "RATE_LIMITED"
)

// Sentinels for errors.Is checks. An *Error matches the sentinel of its kind.
var (
	ErrNotFound         = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrForbidden        = &Error{Kind: KindForbidden, Msg: "forbidden"}
	ErrInvalidArgument  = &Error{Kind: KindInvalidArgument, Msg: "invalid argument"}
	ErrAlreadyMember    = &Error{Kind: KindAlreadyMember, Msg: "already a member"}
	ErrTeamFull         = &Error{Kind: KindTeamFull, Msg: "team is full"}
	ErrDuplicateRequest = &Error{Kind: KindDuplicateRequest, Msg: "a pending request already exists"}
	ErrInvalidState     = &Error{Kind: KindInvalidState, Msg: "request is not pending"}
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated, Msg: "unauthenticated"}
	ErrRateLimited      = &Error{Kind: KindRateLimited, Msg: "too many requests"}
)

// Error is a domain failure of a known kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrTeamFull)
// holds for every TeamFull failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New builds an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// NotFound is a shorthand for New(KindNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Forbidden is a shorthand for New(KindForbidden, ...).
func Forbidden(format string, args ...any) *Error {
	return New(KindForbidden, format, args...)
}

// InvalidArgument is a shorthand for New(KindInvalidArgument, ...).
func InvalidArgument(format string, args ...any) *Error {
	return New(KindInvalidArgument, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err carries no domain kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
