package api

import (
	"context"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// NoteService implements the NoteService gRPC service.
type NoteService struct {
	flockv1.UnimplementedNoteServiceServer

	db  *store.DB
	bus *bus.Bus
}

func NewNoteService(db *store.DB, b *bus.Bus) *NoteService {
	return &NoteService{db: db, bus: b}
}

func (s *NoteService) ListNotes(_ context.Context, req *flockv1.ListNotesRequest) (*flockv1.ListNotesResponse, error) {
	notes, err := s.db.ListNotes(req.SermonID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list notes: %v", err)
	}
	out := make([]*flockv1.Note, 0, len(notes))
	for i := range notes {
		out = append(out, noteToProto(&notes[i]))
	}
	return &flockv1.ListNotesResponse{Notes: out}, nil
}

func (s *NoteService) AddNote(_ context.Context, req *flockv1.AddNoteRequest) (*flockv1.AddNoteResponse, error) {
	n, err := s.db.AddNote(store.Note{SermonID: req.SermonID, Title: req.Title, Content: req.Content})
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "add note: %v", err)
	}
	if n == nil {
		return &flockv1.AddNoteResponse{}, nil
	}
	s.bus.Publish(bus.NewEvent(bus.KindNoteAdded, n.ID))
	return &flockv1.AddNoteResponse{Note: noteToProto(n)}, nil
}

func (s *NoteService) DeleteNote(_ context.Context, req *flockv1.DeleteNoteRequest) (*flockv1.DeleteNoteResponse, error) {
	if req.ID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "id is required")
	}
	deleted, err := s.db.DeleteNote(req.ID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "delete note: %v", err)
	}
	if deleted {
		s.bus.Publish(bus.NewEvent(bus.KindNoteDeleted, req.ID))
	}
	return &flockv1.DeleteNoteResponse{Deleted: deleted}, nil
}
