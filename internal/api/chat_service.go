package api

import (
	"context"

	"github.com/google/uuid"
	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ChatService implements the ChatService gRPC service.
type ChatService struct {
	flockv1.UnimplementedChatServiceServer

	db          *store.DB
	bus         *bus.Bus
	sessionName string
}

// NewChatService creates a new chat service backed by the store.
func NewChatService(db *store.DB, b *bus.Bus, sessionName string) *ChatService {
	return &ChatService{db: db, bus: b, sessionName: sessionName}
}

func (s *ChatService) ListGroups(_ context.Context, _ *flockv1.ListGroupsRequest) (*flockv1.ListGroupsResponse, error) {
	groups, err := s.db.ListGroups()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list groups: %v", err)
	}
	pbGroups := make([]*flockv1.Group, 0, len(groups))
	for i := range groups {
		pbGroups = append(pbGroups, groupToProto(&groups[i]))
	}
	return &flockv1.ListGroupsResponse{Groups: pbGroups}, nil
}

func (s *ChatService) GetGroup(_ context.Context, req *flockv1.GetGroupRequest) (*flockv1.GetGroupResponse, error) {
	if req.GroupID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "group_id is required")
	}
	g, err := s.db.GetGroup(req.GroupID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get group: %v", err)
	}
	if g == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "group %q not found", req.GroupID)
	}
	return &flockv1.GetGroupResponse{Group: groupToProto(g)}, nil
}

func (s *ChatService) CreateGroup(_ context.Context, req *flockv1.CreateGroupRequest) (*flockv1.CreateGroupResponse, error) {
	g, err := s.db.CreateGroup(req.Name, req.MemberIDs)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "create group: %v", err)
	}
	if g == nil {
		return &flockv1.CreateGroupResponse{}, nil
	}
	s.bus.Publish(bus.NewEvent(bus.KindGroupCreated, g.ID))
	return &flockv1.CreateGroupResponse{Group: groupToProto(g)}, nil
}

func (s *ChatService) MarkGroupAsRead(_ context.Context, req *flockv1.MarkGroupAsReadRequest) (*flockv1.MarkGroupAsReadResponse, error) {
	if req.GroupID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "group_id is required")
	}
	g, err := s.db.GetGroup(req.GroupID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get group: %v", err)
	}
	if g == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "group %q not found", req.GroupID)
	}
	if err := s.db.MarkGroupAsRead(req.GroupID); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "mark read: %v", err)
	}
	if g.UnreadCount > 0 {
		s.bus.Publish(bus.NewEvent(bus.KindGroupRead, req.GroupID))
	}
	return &flockv1.MarkGroupAsReadResponse{}, nil
}

func (s *ChatService) ListContacts(_ context.Context, _ *flockv1.ListContactsRequest) (*flockv1.ListContactsResponse, error) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list contacts: %v", err)
	}
	out := make([]*flockv1.Contact, 0, len(contacts))
	for i := range contacts {
		out = append(out, contactToProto(&contacts[i]))
	}
	return &flockv1.ListContactsResponse{Contacts: out}, nil
}

func (s *ChatService) SendFriendRequest(_ context.Context, req *flockv1.SendFriendRequestRequest) (*flockv1.SendFriendRequestResponse, error) {
	if req.ContactID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "contact_id is required")
	}
	ok, err := s.db.SendFriendRequest(req.ContactID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "friend request: %v", err)
	}
	if !ok {
		return nil, grpcstatus.Errorf(codes.NotFound, "contact %q not found", req.ContactID)
	}
	contacts, err := s.db.ListContacts()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list contacts: %v", err)
	}
	s.bus.Publish(bus.NewEvent(bus.KindContactUpdated, req.ContactID))
	for i := range contacts {
		if contacts[i].ID == req.ContactID {
			return &flockv1.SendFriendRequestResponse{Contact: contactToProto(&contacts[i])}, nil
		}
	}
	return &flockv1.SendFriendRequestResponse{}, nil
}

// WatchChatUpdates streams every chat.* and message.* event until the client
// goes away.
func (s *ChatService) WatchChatUpdates(_ *flockv1.WatchChatUpdatesRequest, stream grpc.ServerStreamingServer[flockv1.EventEnvelope]) error {
	ch, unsub := s.bus.Subscribe(256, "chat.", "message.")
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if err := stream.Send(s.envelope(evt)); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func (s *ChatService) envelope(evt bus.Event) *flockv1.EventEnvelope {
	env := &flockv1.EventEnvelope{
		EventID:          uuid.New().String(),
		Session:          s.sessionName,
		OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
		Kind:             evt.Kind,
	}
	switch p := evt.Payload.(type) {
	case string:
		env.GroupID = p
	case store.Message:
		env.GroupID = p.GroupID
		env.Message = messageToProto(&p)
	}
	return env
}
