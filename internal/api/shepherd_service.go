package api

import (
	"context"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ShepherdService exposes the AI gateway. Gateway failures are never RPC
// errors; callers get the fallback text or a nil story.
type ShepherdService struct {
	flockv1.UnimplementedShepherdServiceServer

	db      *store.DB
	gateway *shepherd.Gateway
}

func NewShepherdService(db *store.DB, gateway *shepherd.Gateway) *ShepherdService {
	return &ShepherdService{db: db, gateway: gateway}
}

func (s *ShepherdService) GetGuidance(ctx context.Context, req *flockv1.GetGuidanceRequest) (*flockv1.GetGuidanceResponse, error) {
	return &flockv1.GetGuidanceResponse{Reply: s.gateway.GetGuidance(ctx, req.Text)}, nil
}

func (s *ShepherdService) SummarizeSermon(ctx context.Context, req *flockv1.SummarizeSermonRequest) (*flockv1.SummarizeSermonResponse, error) {
	if req.SermonID == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "sermon_id is required")
	}
	sermon, err := s.db.GetSermon(req.SermonID)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get sermon: %v", err)
	}
	if sermon == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "sermon %q not found", req.SermonID)
	}
	if sermon.Transcript == "" {
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "sermon %q has no transcript", req.SermonID)
	}
	return &flockv1.SummarizeSermonResponse{Summary: s.gateway.SummarizeTranscript(ctx, sermon.Transcript)}, nil
}

func (s *ShepherdService) GenerateStory(ctx context.Context, req *flockv1.GenerateStoryRequest) (*flockv1.GenerateStoryResponse, error) {
	story := s.gateway.GenerateStory(ctx, req.Topic)
	if story == nil {
		return &flockv1.GenerateStoryResponse{}, nil
	}
	return &flockv1.GenerateStoryResponse{Story: storyToProto(story)}, nil
}
