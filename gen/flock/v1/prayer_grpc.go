package flockv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PrayerService_ListPrayerRequests_FullMethodName  = "/flock.v1.PrayerService/ListPrayerRequests"
	PrayerService_AddPrayerRequest_FullMethodName    = "/flock.v1.PrayerService/AddPrayerRequest"
	PrayerService_DeletePrayerRequest_FullMethodName = "/flock.v1.PrayerService/DeletePrayerRequest"
	PrayerService_TogglePrayerStatus_FullMethodName  = "/flock.v1.PrayerService/TogglePrayerStatus"
	PrayerService_PrayFor_FullMethodName             = "/flock.v1.PrayerService/PrayFor"
)

// PrayerServiceServer serves the prayer wall.
type PrayerServiceServer interface {
	ListPrayerRequests(context.Context, *ListPrayerRequestsRequest) (*ListPrayerRequestsResponse, error)
	AddPrayerRequest(context.Context, *AddPrayerRequestRequest) (*AddPrayerRequestResponse, error)
	DeletePrayerRequest(context.Context, *DeletePrayerRequestRequest) (*DeletePrayerRequestResponse, error)
	TogglePrayerStatus(context.Context, *TogglePrayerStatusRequest) (*TogglePrayerStatusResponse, error)
	PrayFor(context.Context, *PrayForRequest) (*PrayForResponse, error)
}

// UnimplementedPrayerServiceServer answers every method with codes.Unimplemented.
type UnimplementedPrayerServiceServer struct{}

func (UnimplementedPrayerServiceServer) ListPrayerRequests(context.Context, *ListPrayerRequestsRequest) (*ListPrayerRequestsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPrayerRequests not implemented")
}

func (UnimplementedPrayerServiceServer) AddPrayerRequest(context.Context, *AddPrayerRequestRequest) (*AddPrayerRequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddPrayerRequest not implemented")
}

func (UnimplementedPrayerServiceServer) DeletePrayerRequest(context.Context, *DeletePrayerRequestRequest) (*DeletePrayerRequestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePrayerRequest not implemented")
}

func (UnimplementedPrayerServiceServer) TogglePrayerStatus(context.Context, *TogglePrayerStatusRequest) (*TogglePrayerStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TogglePrayerStatus not implemented")
}

func (UnimplementedPrayerServiceServer) PrayFor(context.Context, *PrayForRequest) (*PrayForResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PrayFor not implemented")
}

func RegisterPrayerServiceServer(s grpc.ServiceRegistrar, srv PrayerServiceServer) {
	s.RegisterService(&PrayerService_ServiceDesc, srv)
}

var PrayerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flock.v1.PrayerService",
	HandlerType: (*PrayerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPrayerRequests",
			Handler:    unaryHandler(PrayerService_ListPrayerRequests_FullMethodName, PrayerServiceServer.ListPrayerRequests),
		},
		{
			MethodName: "AddPrayerRequest",
			Handler:    unaryHandler(PrayerService_AddPrayerRequest_FullMethodName, PrayerServiceServer.AddPrayerRequest),
		},
		{
			MethodName: "DeletePrayerRequest",
			Handler:    unaryHandler(PrayerService_DeletePrayerRequest_FullMethodName, PrayerServiceServer.DeletePrayerRequest),
		},
		{
			MethodName: "TogglePrayerStatus",
			Handler:    unaryHandler(PrayerService_TogglePrayerStatus_FullMethodName, PrayerServiceServer.TogglePrayerStatus),
		},
		{
			MethodName: "PrayFor",
			Handler:    unaryHandler(PrayerService_PrayFor_FullMethodName, PrayerServiceServer.PrayFor),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type PrayerServiceClient interface {
	ListPrayerRequests(ctx context.Context, in *ListPrayerRequestsRequest, opts ...grpc.CallOption) (*ListPrayerRequestsResponse, error)
	AddPrayerRequest(ctx context.Context, in *AddPrayerRequestRequest, opts ...grpc.CallOption) (*AddPrayerRequestResponse, error)
	DeletePrayerRequest(ctx context.Context, in *DeletePrayerRequestRequest, opts ...grpc.CallOption) (*DeletePrayerRequestResponse, error)
	TogglePrayerStatus(ctx context.Context, in *TogglePrayerStatusRequest, opts ...grpc.CallOption) (*TogglePrayerStatusResponse, error)
	PrayFor(ctx context.Context, in *PrayForRequest, opts ...grpc.CallOption) (*PrayForResponse, error)
}

type prayerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPrayerServiceClient(cc grpc.ClientConnInterface) PrayerServiceClient {
	return &prayerServiceClient{cc}
}

func (c *prayerServiceClient) ListPrayerRequests(ctx context.Context, in *ListPrayerRequestsRequest, opts ...grpc.CallOption) (*ListPrayerRequestsResponse, error) {
	return invoke[ListPrayerRequestsResponse](ctx, c.cc, PrayerService_ListPrayerRequests_FullMethodName, in, opts)
}

func (c *prayerServiceClient) AddPrayerRequest(ctx context.Context, in *AddPrayerRequestRequest, opts ...grpc.CallOption) (*AddPrayerRequestResponse, error) {
	return invoke[AddPrayerRequestResponse](ctx, c.cc, PrayerService_AddPrayerRequest_FullMethodName, in, opts)
}

func (c *prayerServiceClient) DeletePrayerRequest(ctx context.Context, in *DeletePrayerRequestRequest, opts ...grpc.CallOption) (*DeletePrayerRequestResponse, error) {
	return invoke[DeletePrayerRequestResponse](ctx, c.cc, PrayerService_DeletePrayerRequest_FullMethodName, in, opts)
}

func (c *prayerServiceClient) TogglePrayerStatus(ctx context.Context, in *TogglePrayerStatusRequest, opts ...grpc.CallOption) (*TogglePrayerStatusResponse, error) {
	return invoke[TogglePrayerStatusResponse](ctx, c.cc, PrayerService_TogglePrayerStatus_FullMethodName, in, opts)
}

func (c *prayerServiceClient) PrayFor(ctx context.Context, in *PrayForRequest, opts ...grpc.CallOption) (*PrayForResponse, error) {
	return invoke[PrayForResponse](ctx, c.cc, PrayerService_PrayFor_FullMethodName, in, opts)
}
