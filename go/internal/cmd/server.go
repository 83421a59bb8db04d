package main

import (
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"
	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/mcdev12/hackteams/go/internal/genproto/joinrequest/v1/joinrequestv1connect"
	"github.com/mcdev12/hackteams/go/internal/genproto/team/v1/teamv1connect"
	"github.com/mcdev12/hackteams/go/internal/rpcutil"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(cfg *config.Config, handler http.Handler) *http.Server {
	// Setup HTTP/2 server
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

// newHandler builds the routed, CORS-wrapped handler. interceptors run in
// order on every RPC.
func newHandler(cfg *config.Config, services *Services, metricsHandler http.Handler, interceptors ...connect.Interceptor) http.Handler {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message", rpcutil.ErrorKindKey},
	})

	registerServices(mux, services, connect.WithInterceptors(interceptors...))

	// Setup reflection for grpcui/grpcurl
	setupReflection(mux)

	setupHealthCheck(mux)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return c.Handler(mux)
}

func registerServices(mux *http.ServeMux, services *Services, opts ...connect.HandlerOption) {
	// Register team service
	teamServicePath, teamServiceHandler := teamv1connect.NewTeamServiceHandler(services.Teams, opts...)
	mux.Handle(teamServicePath, teamServiceHandler)

	// Register join request service
	joinRequestServicePath, joinRequestServiceHandler := joinrequestv1connect.NewJoinRequestServiceHandler(services.JoinRequests, opts...)
	mux.Handle(joinRequestServicePath, joinRequestServiceHandler)
}

func setupReflection(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(
		teamv1connect.TeamServiceName,
		joinrequestv1connect.JoinRequestServiceName,
	)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
