package flockv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	NoteService_ListNotes_FullMethodName  = "/flock.v1.NoteService/ListNotes"
	NoteService_AddNote_FullMethodName    = "/flock.v1.NoteService/AddNote"
	NoteService_DeleteNote_FullMethodName = "/flock.v1.NoteService/DeleteNote"
)

// NoteServiceServer serves personal sermon notes.
type NoteServiceServer interface {
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	AddNote(context.Context, *AddNoteRequest) (*AddNoteResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error)
}

// UnimplementedNoteServiceServer answers every method with codes.Unimplemented.
type UnimplementedNoteServiceServer struct{}

func (UnimplementedNoteServiceServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotes not implemented")
}

func (UnimplementedNoteServiceServer) AddNote(context.Context, *AddNoteRequest) (*AddNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddNote not implemented")
}

func (UnimplementedNoteServiceServer) DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteNote not implemented")
}

func RegisterNoteServiceServer(s grpc.ServiceRegistrar, srv NoteServiceServer) {
	s.RegisterService(&NoteService_ServiceDesc, srv)
}

var NoteService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flock.v1.NoteService",
	HandlerType: (*NoteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListNotes",
			Handler:    unaryHandler(NoteService_ListNotes_FullMethodName, NoteServiceServer.ListNotes),
		},
		{
			MethodName: "AddNote",
			Handler:    unaryHandler(NoteService_AddNote_FullMethodName, NoteServiceServer.AddNote),
		},
		{
			MethodName: "DeleteNote",
			Handler:    unaryHandler(NoteService_DeleteNote_FullMethodName, NoteServiceServer.DeleteNote),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type NoteServiceClient interface {
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*AddNoteResponse, error)
	DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error)
}

type noteServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNoteServiceClient(cc grpc.ClientConnInterface) NoteServiceClient {
	return &noteServiceClient{cc}
}

func (c *noteServiceClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, NoteService_ListNotes_FullMethodName, in, opts)
}

func (c *noteServiceClient) AddNote(ctx context.Context, in *AddNoteRequest, opts ...grpc.CallOption) (*AddNoteResponse, error) {
	return invoke[AddNoteResponse](ctx, c.cc, NoteService_AddNote_FullMethodName, in, opts)
}

func (c *noteServiceClient) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error) {
	return invoke[DeleteNoteResponse](ctx, c.cc, NoteService_DeleteNote_FullMethodName, in, opts)
}
