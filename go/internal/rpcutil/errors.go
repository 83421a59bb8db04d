// Package rpcutil holds the pieces shared by every connect service: mapping
// domain failures to connect codes and parsing wire identifiers.
package rpcutil

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/rs/zerolog/log"
)

// ErrorKindKey is the error metadata key carrying the domain failure kind.
const ErrorKindKey = "Team-Error-Kind"

var kindCodes = map[apperr.Kind]connect.Code{
	apperr.KindNotFound:         connect.CodeNotFound,
	apperr.KindForbidden:        connect.CodePermissionDenied,
	apperr.KindInvalidArgument:  connect.CodeInvalidArgument,
	apperr.KindAlreadyMember:    connect.CodeAlreadyExists,
	apperr.KindDuplicateRequest: connect.CodeAlreadyExists,
	apperr.KindTeamFull:         connect.CodeFailedPrecondition,
	apperr.KindInvalidState:     connect.CodeFailedPrecondition,
	apperr.KindUnauthenticated:  connect.CodeUnauthenticated,
	apperr.KindRateLimited:      connect.CodeResourceExhausted,
}

// CodeFor returns the connect code a domain kind is reported with.
func CodeFor(kind apperr.Kind) connect.Code {
	if code, ok := kindCodes[kind]; ok {
		return code
	}
	return connect.CodeInternal
}

// ToConnectError converts an app-layer error into a *connect.Error. Domain
// kinds keep their kind in the ErrorKindKey metadata; anything unclassified
// is logged and reported as Internal.
func ToConnectError(procedure string, err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	kind := apperr.KindOf(err)
	if kind == "" {
		log.Error().Err(err).Str("procedure", procedure).Msg("internal error")
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	cerr := connect.NewError(CodeFor(kind), err)
	cerr.Meta().Set(ErrorKindKey, string(kind))
	return cerr
}

// KindFromError recovers the domain kind from an error returned by a
// connect client, or "" if none was sent.
func KindFromError(err error) apperr.Kind {
	var ce *connect.Error
	if !errors.As(err, &ce) {
		return ""
	}
	return apperr.Kind(ce.Meta().Get(ErrorKindKey))
}

// ParseUUID parses a required identifier field.
func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindInvalidArgument, err, field+" must be a UUID")
	}
	return id, nil
}
