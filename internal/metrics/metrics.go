// Package metrics holds the daemon's Prometheus collectors.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "flock"

var (
	// Registry holds the daemon's collectors.
	Registry = prometheus.NewRegistry()

	simulationTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "ticks_total",
			Help:      "Simulation timer firings by outcome.",
		},
		[]string{"outcome"},
	)

	messages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Chat messages stored, by direction.",
		},
		[]string{"direction"},
	)

	aiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "AI gateway calls by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	aiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "Duration of AI completion calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"operation"},
	)

	busDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "events_dropped_total",
			Help:      "Events dropped because a subscriber buffer was full.",
		},
	)

	rpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Unary RPCs handled, by method and status code.",
		},
		[]string{"method", "code"},
	)

	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of unary RPCs.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method"},
	)
)

func init() {
	Registry.MustRegister(
		simulationTicks,
		messages,
		aiRequests,
		aiDuration,
		busDropped,
		rpcRequests,
		rpcDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Tick outcomes.
const (
	TickFired   = "fired"
	TickSkipped = "skipped"
	TickFailed  = "failed"
)

func RecordTick(outcome string) {
	simulationTicks.WithLabelValues(outcome).Inc()
}

// RecordMessage counts a stored message; direction is "inbound" or "outbound".
func RecordMessage(direction string) {
	messages.WithLabelValues(direction).Inc()
}

// AI outcomes.
const (
	AIOK        = "ok"
	AIEmpty     = "empty"
	AIError     = "error"
	AIThrottled = "throttled"
	AIRejected  = "rejected"
)

// RecordAIRequest counts an AI gateway call. A zero duration means the
// service was never reached and no latency is observed.
func RecordAIRequest(operation, outcome string, duration time.Duration) {
	aiRequests.WithLabelValues(operation, outcome).Inc()
	if duration > 0 {
		aiDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

func RecordBusDrop() {
	busDropped.Inc()
}

// UnaryServerInterceptor counts and times every unary RPC.
func UnaryServerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	rpcRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	rpcDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	return resp, err
}
