package daemon

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/api"
	"github.com/matheus3301/flock/internal/metrics"
	"github.com/matheus3301/flock/internal/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Services groups the gRPC service implementations served by the daemon.
type Services struct {
	fx.In

	Session  *api.SessionService
	Chat     *api.ChatService
	Message  *api.MessageService
	Prayer   *api.PrayerService
	Note     *api.NoteService
	Library  *api.LibraryService
	Shepherd *api.ShepherdService
}

// Server manages the gRPC server lifecycle for a session daemon.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	socketPath string
	logger     *zap.Logger
}

// NewServer creates a gRPC server bound to the session's Unix domain socket.
func NewServer(p Params, logger *zap.Logger, svcs Services) (*Server, error) {
	socketPath := p.SocketPath
	if socketPath == "" {
		socketPath = session.SocketPath(p.SessionName)
	}

	// Clean stale socket if it exists.
	if _, err := os.Stat(socketPath); err == nil {
		_ = os.Remove(socketPath)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}

	// Set socket permissions to 0600.
	if err := os.Chmod(socketPath, 0600); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logUnary(logger),
		metrics.UnaryServerInterceptor,
	))
	flockv1.RegisterSessionServiceServer(srv, svcs.Session)
	flockv1.RegisterChatServiceServer(srv, svcs.Chat)
	flockv1.RegisterMessageServiceServer(srv, svcs.Message)
	flockv1.RegisterPrayerServiceServer(srv, svcs.Prayer)
	flockv1.RegisterNoteServiceServer(srv, svcs.Note)
	flockv1.RegisterLibraryServiceServer(srv, svcs.Library)
	flockv1.RegisterShepherdServiceServer(srv, svcs.Shepherd)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{
		grpcServer: srv,
		health:     hs,
		listener:   listener,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// Start begins serving gRPC requests. Blocks until stopped.
func (s *Server) Start() error {
	s.logger.Info("gRPC server starting", zap.String("socket", s.socketPath))
	return s.grpcServer.Serve(s.listener)
}

// Stop performs a graceful shutdown and removes the socket file.
func (s *Server) Stop(_ context.Context) {
	s.logger.Info("gRPC server stopping")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	_ = os.Remove(s.socketPath)
}

func logUnary(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				zap.String("method", info.FullMethod),
				zap.String("code", status.Code(err).String()),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			return resp, err
		}
		logger.Debug("rpc", zap.String("method", info.FullMethod), zap.Duration("elapsed", time.Since(start)))
		return resp, nil
	}
}
