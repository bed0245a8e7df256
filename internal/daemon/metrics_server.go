package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/matheus3301/flock/internal/metrics"
	"go.uber.org/zap"
)

// MetricsServer exposes Prometheus metrics over HTTP. An empty address
// disables it.
type MetricsServer struct {
	addr   string
	srv    *http.Server
	logger *zap.Logger
}

func NewMetricsServer(addr string, logger *zap.Logger) *MetricsServer {
	return &MetricsServer{addr: addr, logger: logger}
}

// Start binds the listener and serves in the background.
func (m *MetricsServer) Start() error {
	if m.addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", m.addr)
	if err != nil {
		return fmt.Errorf("listen metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	m.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("metrics server error", zap.Error(err))
		}
	}()
	m.logger.Info("metrics server started", zap.String("addr", ln.Addr().String()))
	return nil
}

func (m *MetricsServer) Stop(ctx context.Context) {
	if m.srv == nil {
		return
	}
	if err := m.srv.Shutdown(ctx); err != nil {
		m.logger.Warn("metrics server shutdown", zap.Error(err))
	}
}
