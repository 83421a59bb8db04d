package auth

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

// Interceptor resolves the bearer token of every incoming call. Calls
// without a token proceed anonymously and each operation decides whether it
// needs an actor; a token that fails verification is rejected outright.
type Interceptor struct {
	verifier *Verifier
}

var _ connect.Interceptor = (*Interceptor)(nil)

// NewInterceptor creates the auth interceptor.
func NewInterceptor(verifier *Verifier) *Interceptor {
	return &Interceptor{verifier: verifier}
}

func (i *Interceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		ctx, err := i.authenticate(ctx, req.Header(), req.Spec().Procedure)
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

func (i *Interceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *Interceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx, err := i.authenticate(ctx, conn.RequestHeader(), conn.Spec().Procedure)
		if err != nil {
			return err
		}
		return next(ctx, conn)
	}
}

func (i *Interceptor) authenticate(ctx context.Context, header http.Header, procedure string) (context.Context, error) {
	token, ok := BearerToken(header.Get("Authorization"))
	if !ok {
		return ctx, nil
	}
	userID, err := i.verifier.Verify(token)
	if err != nil {
		log.Debug().Err(err).Str("procedure", procedure).Msg("rejected bearer token")
		return ctx, connect.NewError(connect.CodeUnauthenticated, err)
	}
	return WithActor(ctx, userID), nil
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
