package api

import (
	"context"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/status"
	"github.com/matheus3301/flock/internal/store"
	"go.uber.org/zap"
)

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	flockv1.UnimplementedSessionServiceServer

	sessionName  string
	startedAt    time.Time
	machine      *status.Machine
	db           *store.DB
	gateway      *shepherd.Gateway
	simulationOn bool
	logger       *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessionName string, machine *status.Machine, db *store.DB, gateway *shepherd.Gateway, simulationOn bool, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		sessionName:  sessionName,
		startedAt:    time.Now(),
		machine:      machine,
		db:           db,
		gateway:      gateway,
		simulationOn: simulationOn,
		logger:       logger,
	}
}

func (s *SessionService) GetSessionStatus(_ context.Context, _ *flockv1.GetSessionStatusRequest) (*flockv1.GetSessionStatusResponse, error) {
	resp := &flockv1.GetSessionStatusResponse{
		Session:      s.sessionName,
		Status:       string(s.machine.Current()),
		UptimeMs:     time.Since(s.startedAt).Milliseconds(),
		SimulationOn: s.simulationOn,
	}
	if s.gateway != nil {
		resp.AIAvailable = s.gateway.Available()
	}

	// Counts and profile are best effort; the status itself must always answer.
	if s.db != nil {
		if stats, err := s.db.Stats(); err == nil {
			resp.GroupCount = int32(stats.Groups)
			resp.MessageCount = int32(stats.Messages)
			resp.UnreadCount = int32(stats.Unread)
			resp.PrayerCount = int32(stats.Prayers)
			resp.NoteCount = int32(stats.Notes)
		} else {
			s.logger.Warn("session status: stats", zap.Error(err))
		}
		if u, err := s.db.Profile(); err == nil {
			resp.Profile = userToProto(u)
		}
	}
	return resp, nil
}
