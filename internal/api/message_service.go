package api

import (
	"context"
	"errors"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/metrics"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	flockv1.UnimplementedMessageServiceServer

	db  *store.DB
	bus *bus.Bus
}

// NewMessageService creates a new message service backed by the store.
func NewMessageService(db *store.DB, b *bus.Bus) *MessageService {
	return &MessageService{db: db, bus: b}
}

func (s *MessageService) ListMessages(_ context.Context, req *flockv1.ListMessagesRequest) (*flockv1.ListMessagesResponse, error) {
	if req.GroupID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "group_id is required")
	}
	msgs, err := s.db.ListMessages(req.GroupID, int(req.Limit))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list messages: %v", err)
	}
	return &flockv1.ListMessagesResponse{Messages: messagesToProto(msgs)}, nil
}

func (s *MessageService) SearchMessages(_ context.Context, req *flockv1.SearchMessagesRequest) (*flockv1.SearchMessagesResponse, error) {
	msgs, err := s.db.SearchMessages(req.Query, req.GroupID, int(req.Limit))
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "search messages: %v", err)
	}
	return &flockv1.SearchMessagesResponse{Messages: messagesToProto(msgs)}, nil
}

func (s *MessageService) SendMessage(_ context.Context, req *flockv1.SendMessageRequest) (*flockv1.SendMessageResponse, error) {
	if req.GroupID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "group_id is required")
	}
	m, err := s.db.SendMessage(req.GroupID, req.Text, req.VideoRef)
	if errors.Is(err, store.ErrGroupNotFound) {
		return nil, grpcstatus.Errorf(codes.NotFound, "group %q not found", req.GroupID)
	}
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "send message: %v", err)
	}
	if m == nil {
		return &flockv1.SendMessageResponse{}, nil
	}
	metrics.RecordMessage("outbound")
	s.bus.Publish(bus.NewEvent(bus.KindMessageSent, *m))
	s.bus.Publish(bus.NewEvent(bus.KindGroupUpdated, m.GroupID))
	return &flockv1.SendMessageResponse{Message: messageToProto(m)}, nil
}

func messagesToProto(msgs []store.Message) []*flockv1.Message {
	out := make([]*flockv1.Message, 0, len(msgs))
	for i := range msgs {
		out = append(out, messageToProto(&msgs[i]))
	}
	return out
}
