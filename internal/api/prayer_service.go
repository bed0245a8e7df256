package api

import (
	"context"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// PrayerService implements the PrayerService gRPC service.
type PrayerService struct {
	flockv1.UnimplementedPrayerServiceServer

	db  *store.DB
	bus *bus.Bus
}

func NewPrayerService(db *store.DB, b *bus.Bus) *PrayerService {
	return &PrayerService{db: db, bus: b}
}

func (s *PrayerService) ListPrayerRequests(_ context.Context, _ *flockv1.ListPrayerRequestsRequest) (*flockv1.ListPrayerRequestsResponse, error) {
	reqs, err := s.db.ListPrayerRequests()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list prayers: %v", err)
	}
	out := make([]*flockv1.PrayerRequest, 0, len(reqs))
	for i := range reqs {
		out = append(out, prayerToProto(&reqs[i]))
	}
	return &flockv1.ListPrayerRequestsResponse{Requests: out}, nil
}

func (s *PrayerService) AddPrayerRequest(_ context.Context, req *flockv1.AddPrayerRequestRequest) (*flockv1.AddPrayerRequestResponse, error) {
	in := store.PrayerRequest{Content: req.Content, IsPrivate: req.IsPrivate}
	if req.Anonymous {
		in.Author = store.AnonymousAuthor
	}
	p, err := s.db.AddPrayerRequest(in)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "add prayer: %v", err)
	}
	if p == nil {
		return &flockv1.AddPrayerRequestResponse{}, nil
	}
	s.bus.Publish(bus.NewEvent(bus.KindPrayerAdded, p.ID))
	return &flockv1.AddPrayerRequestResponse{Request: prayerToProto(p)}, nil
}

func (s *PrayerService) DeletePrayerRequest(_ context.Context, req *flockv1.DeletePrayerRequestRequest) (*flockv1.DeletePrayerRequestResponse, error) {
	if req.ID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "id is required")
	}
	deleted, err := s.db.DeletePrayerRequest(req.ID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "delete prayer: %v", err)
	}
	if deleted {
		s.bus.Publish(bus.NewEvent(bus.KindPrayerDeleted, req.ID))
	}
	return &flockv1.DeletePrayerRequestResponse{Deleted: deleted}, nil
}

// TogglePrayerStatus flips a request the local user authored. Requests by
// anyone else come back unchanged.
func (s *PrayerService) TogglePrayerStatus(_ context.Context, req *flockv1.TogglePrayerStatusRequest) (*flockv1.TogglePrayerStatusResponse, error) {
	if req.ID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "id is required")
	}
	changed, err := s.db.TogglePrayerStatus(req.ID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "toggle prayer: %v", err)
	}
	p, err := s.lookup(req.ID)
	if err != nil {
		return nil, err
	}
	if changed {
		s.bus.Publish(bus.NewEvent(bus.KindPrayerUpdated, req.ID))
	}
	return &flockv1.TogglePrayerStatusResponse{Changed: changed, Request: prayerToProto(p)}, nil
}

func (s *PrayerService) PrayFor(_ context.Context, req *flockv1.PrayForRequest) (*flockv1.PrayForResponse, error) {
	if req.ID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "id is required")
	}
	if _, err := s.db.PrayFor(req.ID); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "pray for: %v", err)
	}
	p, err := s.lookup(req.ID)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(bus.NewEvent(bus.KindPrayerUpdated, req.ID))
	return &flockv1.PrayForResponse{Request: prayerToProto(p)}, nil
}

func (s *PrayerService) lookup(id string) (*store.PrayerRequest, error) {
	p, err := s.db.GetPrayerRequest(id)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get prayer: %v", err)
	}
	if p == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "prayer request %q not found", id)
	}
	return p, nil
}
