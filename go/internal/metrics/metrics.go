// Package metrics exposes Prometheus collectors for the API server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hackteams"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// NewRegistry returns a registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves reg in the text exposition format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// register adds c to reg, reusing an identical collector registered earlier
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Lifecycle counts join request transitions
type Lifecycle struct {
	submitted prometheus.Counter
	decided   *prometheus.CounterVec
	conflicts prometheus.Counter
}

func NewLifecycle(reg prometheus.Registerer) (*Lifecycle, error) {
	submitted, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "join_requests",
		Name:      "submitted_total",
		Help:      "Join requests created.",
	}))
	if err != nil {
		return nil, err
	}
	decided, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "join_requests",
		Name:      "decided_total",
		Help:      "Join requests accepted or rejected.",
	}, []string{"status"}))
	if err != nil {
		return nil, err
	}
	conflicts, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "join_requests",
		Name:      "capacity_conflicts_total",
		Help:      "Accepts that failed because the team filled up first.",
	}))
	if err != nil {
		return nil, err
	}
	return &Lifecycle{submitted: submitted, decided: decided, conflicts: conflicts}, nil
}

func (l *Lifecycle) RequestSubmitted() {
	l.submitted.Inc()
}

func (l *Lifecycle) RequestDecided(status models.JoinRequestStatus) {
	l.decided.WithLabelValues(string(status)).Inc()
}

func (l *Lifecycle) CapacityConflict() {
	l.conflicts.Inc()
}

// RPC records per-procedure request counts and latency. It implements
// connect.Interceptor on the handler side.
type RPC struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRPC(reg prometheus.Registerer) (*RPC, error) {
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "Count of handled RPCs.",
	}, []string{"procedure", "code"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution of RPC handlers.",
		Buckets:   histogramBuckets,
	}, []string{"procedure"}))
	if err != nil {
		return nil, err
	}
	return &RPC{requests: requests, duration: duration}, nil
}

var _ connect.Interceptor = (*RPC)(nil)

func (m *RPC) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		start := time.Now()
		resp, err := next(ctx, req)
		m.observe(req.Spec().Procedure, err, time.Since(start))
		return resp, err
	}
}

func (m *RPC) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (m *RPC) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		m.observe(conn.Spec().Procedure, err, time.Since(start))
		return err
	}
}

func (m *RPC) observe(procedure string, err error, d time.Duration) {
	code := "ok"
	if err != nil {
		code = connect.CodeOf(err).String()
	}
	m.requests.WithLabelValues(procedure, code).Inc()
	m.duration.WithLabelValues(procedure).Observe(d.Seconds())
}
