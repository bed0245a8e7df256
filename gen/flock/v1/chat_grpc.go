package flockv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ChatService_ListGroups_FullMethodName        = "/flock.v1.ChatService/ListGroups"
	ChatService_GetGroup_FullMethodName          = "/flock.v1.ChatService/GetGroup"
	ChatService_CreateGroup_FullMethodName       = "/flock.v1.ChatService/CreateGroup"
	ChatService_MarkGroupAsRead_FullMethodName   = "/flock.v1.ChatService/MarkGroupAsRead"
	ChatService_ListContacts_FullMethodName      = "/flock.v1.ChatService/ListContacts"
	ChatService_SendFriendRequest_FullMethodName = "/flock.v1.ChatService/SendFriendRequest"
	ChatService_WatchChatUpdates_FullMethodName  = "/flock.v1.ChatService/WatchChatUpdates"
)

// ChatServiceServer serves group chats, contacts and the live update stream.
type ChatServiceServer interface {
	ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error)
	GetGroup(context.Context, *GetGroupRequest) (*GetGroupResponse, error)
	CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error)
	MarkGroupAsRead(context.Context, *MarkGroupAsReadRequest) (*MarkGroupAsReadResponse, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	SendFriendRequest(context.Context, *SendFriendRequestRequest) (*SendFriendRequestResponse, error)
	WatchChatUpdates(*WatchChatUpdatesRequest, grpc.ServerStreamingServer[EventEnvelope]) error
}

// UnimplementedChatServiceServer answers every method with codes.Unimplemented.
type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGroups not implemented")
}

func (UnimplementedChatServiceServer) GetGroup(context.Context, *GetGroupRequest) (*GetGroupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGroup not implemented")
}

func (UnimplementedChatServiceServer) CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateGroup not implemented")
}

func (UnimplementedChatServiceServer) MarkGroupAsRead(context.Context, *MarkGroupAsReadRequest) (*MarkGroupAsReadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkGroupAsRead not implemented")
}

func (UnimplementedChatServiceServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListContacts not implemented")
}

func (UnimplementedChatServiceServer) SendFriendRequest(context.Context, *SendFriendRequestRequest) (*SendFriendRequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendFriendRequest not implemented")
}

func (UnimplementedChatServiceServer) WatchChatUpdates(*WatchChatUpdatesRequest, grpc.ServerStreamingServer[EventEnvelope]) error {
	return status.Error(codes.Unimplemented, "method WatchChatUpdates not implemented")
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_WatchChatUpdates_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WatchChatUpdatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatServiceServer).WatchChatUpdates(m, &grpc.GenericServerStream[WatchChatUpdatesRequest, EventEnvelope]{ServerStream: stream})
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flock.v1.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListGroups",
			Handler:    unaryHandler(ChatService_ListGroups_FullMethodName, ChatServiceServer.ListGroups),
		},
		{
			MethodName: "GetGroup",
			Handler:    unaryHandler(ChatService_GetGroup_FullMethodName, ChatServiceServer.GetGroup),
		},
		{
			MethodName: "CreateGroup",
			Handler:    unaryHandler(ChatService_CreateGroup_FullMethodName, ChatServiceServer.CreateGroup),
		},
		{
			MethodName: "MarkGroupAsRead",
			Handler:    unaryHandler(ChatService_MarkGroupAsRead_FullMethodName, ChatServiceServer.MarkGroupAsRead),
		},
		{
			MethodName: "ListContacts",
			Handler:    unaryHandler(ChatService_ListContacts_FullMethodName, ChatServiceServer.ListContacts),
		},
		{
			MethodName: "SendFriendRequest",
			Handler:    unaryHandler(ChatService_SendFriendRequest_FullMethodName, ChatServiceServer.SendFriendRequest),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchChatUpdates",
			Handler:       _ChatService_WatchChatUpdates_Handler,
			ServerStreams: true,
		},
	},
}

type ChatServiceClient interface {
	ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error)
	GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GetGroupResponse, error)
	CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error)
	MarkGroupAsRead(ctx context.Context, in *MarkGroupAsReadRequest, opts ...grpc.CallOption) (*MarkGroupAsReadResponse, error)
	ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error)
	SendFriendRequest(ctx context.Context, in *SendFriendRequestRequest, opts ...grpc.CallOption) (*SendFriendRequestResponse, error)
	WatchChatUpdates(ctx context.Context, in *WatchChatUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error) {
	return invoke[ListGroupsResponse](ctx, c.cc, ChatService_ListGroups_FullMethodName, in, opts)
}

func (c *chatServiceClient) GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GetGroupResponse, error) {
	return invoke[GetGroupResponse](ctx, c.cc, ChatService_GetGroup_FullMethodName, in, opts)
}

func (c *chatServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error) {
	return invoke[CreateGroupResponse](ctx, c.cc, ChatService_CreateGroup_FullMethodName, in, opts)
}

func (c *chatServiceClient) MarkGroupAsRead(ctx context.Context, in *MarkGroupAsReadRequest, opts ...grpc.CallOption) (*MarkGroupAsReadResponse, error) {
	return invoke[MarkGroupAsReadResponse](ctx, c.cc, ChatService_MarkGroupAsRead_FullMethodName, in, opts)
}

func (c *chatServiceClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	return invoke[ListContactsResponse](ctx, c.cc, ChatService_ListContacts_FullMethodName, in, opts)
}

func (c *chatServiceClient) SendFriendRequest(ctx context.Context, in *SendFriendRequestRequest, opts ...grpc.CallOption) (*SendFriendRequestResponse, error) {
	return invoke[SendFriendRequestResponse](ctx, c.cc, ChatService_SendFriendRequest_FullMethodName, in, opts)
}

func (c *chatServiceClient) WatchChatUpdates(ctx context.Context, in *WatchChatUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error) {
	stream, err := c.cc.NewStream(ctx, &ChatService_ServiceDesc.Streams[0], ChatService_WatchChatUpdates_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchChatUpdatesRequest, EventEnvelope]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
