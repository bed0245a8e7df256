package flockv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	LibraryService_ListSermons_FullMethodName = "/flock.v1.LibraryService/ListSermons"
	LibraryService_ListSongs_FullMethodName   = "/flock.v1.LibraryService/ListSongs"
	LibraryService_ListShorts_FullMethodName  = "/flock.v1.LibraryService/ListShorts"
)

// LibraryServiceServer serves the read-only sermon, song and shorts catalog.
type LibraryServiceServer interface {
	ListSermons(context.Context, *ListSermonsRequest) (*ListSermonsResponse, error)
	ListSongs(context.Context, *ListSongsRequest) (*ListSongsResponse, error)
	ListShorts(context.Context, *ListShortsRequest) (*ListShortsResponse, error)
}

// UnimplementedLibraryServiceServer answers every method with codes.Unimplemented.
type UnimplementedLibraryServiceServer struct{}

func (UnimplementedLibraryServiceServer) ListSermons(context.Context, *ListSermonsRequest) (*ListSermonsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSermons not implemented")
}

func (UnimplementedLibraryServiceServer) ListSongs(context.Context, *ListSongsRequest) (*ListSongsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSongs not implemented")
}

func (UnimplementedLibraryServiceServer) ListShorts(context.Context, *ListShortsRequest) (*ListShortsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListShorts not implemented")
}

func RegisterLibraryServiceServer(s grpc.ServiceRegistrar, srv LibraryServiceServer) {
	s.RegisterService(&LibraryService_ServiceDesc, srv)
}

var LibraryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flock.v1.LibraryService",
	HandlerType: (*LibraryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListSermons",
			Handler:    unaryHandler(LibraryService_ListSermons_FullMethodName, LibraryServiceServer.ListSermons),
		},
		{
			MethodName: "ListSongs",
			Handler:    unaryHandler(LibraryService_ListSongs_FullMethodName, LibraryServiceServer.ListSongs),
		},
		{
			MethodName: "ListShorts",
			Handler:    unaryHandler(LibraryService_ListShorts_FullMethodName, LibraryServiceServer.ListShorts),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type LibraryServiceClient interface {
	ListSermons(ctx context.Context, in *ListSermonsRequest, opts ...grpc.CallOption) (*ListSermonsResponse, error)
	ListSongs(ctx context.Context, in *ListSongsRequest, opts ...grpc.CallOption) (*ListSongsResponse, error)
	ListShorts(ctx context.Context, in *ListShortsRequest, opts ...grpc.CallOption) (*ListShortsResponse, error)
}

type libraryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLibraryServiceClient(cc grpc.ClientConnInterface) LibraryServiceClient {
	return &libraryServiceClient{cc}
}

func (c *libraryServiceClient) ListSermons(ctx context.Context, in *ListSermonsRequest, opts ...grpc.CallOption) (*ListSermonsResponse, error) {
	return invoke[ListSermonsResponse](ctx, c.cc, LibraryService_ListSermons_FullMethodName, in, opts)
}

func (c *libraryServiceClient) ListSongs(ctx context.Context, in *ListSongsRequest, opts ...grpc.CallOption) (*ListSongsResponse, error) {
	return invoke[ListSongsResponse](ctx, c.cc, LibraryService_ListSongs_FullMethodName, in, opts)
}

func (c *libraryServiceClient) ListShorts(ctx context.Context, in *ListShortsRequest, opts ...grpc.CallOption) (*ListShortsResponse, error) {
	return invoke[ListShortsResponse](ctx, c.cc, LibraryService_ListShorts_FullMethodName, in, opts)
}
