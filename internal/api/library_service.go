package api

import (
	"context"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// LibraryService serves the read-only catalog.
type LibraryService struct {
	flockv1.UnimplementedLibraryServiceServer

	db *store.DB
}

func NewLibraryService(db *store.DB) *LibraryService {
	return &LibraryService{db: db}
}

func (s *LibraryService) ListSermons(_ context.Context, _ *flockv1.ListSermonsRequest) (*flockv1.ListSermonsResponse, error) {
	sermons, err := s.db.ListSermons()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list sermons: %v", err)
	}
	out := make([]*flockv1.Sermon, 0, len(sermons))
	for i := range sermons {
		out = append(out, sermonToProto(&sermons[i]))
	}
	return &flockv1.ListSermonsResponse{Sermons: out}, nil
}

func (s *LibraryService) ListSongs(_ context.Context, _ *flockv1.ListSongsRequest) (*flockv1.ListSongsResponse, error) {
	songs, err := s.db.ListSongs()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list songs: %v", err)
	}
	out := make([]*flockv1.Song, 0, len(songs))
	for i := range songs {
		out = append(out, songToProto(&songs[i]))
	}
	return &flockv1.ListSongsResponse{Songs: out}, nil
}

func (s *LibraryService) ListShorts(_ context.Context, _ *flockv1.ListShortsRequest) (*flockv1.ListShortsResponse, error) {
	shorts, err := s.db.ListShorts()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list shorts: %v", err)
	}
	out := make([]*flockv1.ShortVideo, 0, len(shorts))
	for i := range shorts {
		out = append(out, shortToProto(&shorts[i]))
	}
	return &flockv1.ListShortsResponse{Shorts: out}, nil
}
