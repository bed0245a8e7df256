package flockv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ShepherdService_GetGuidance_FullMethodName     = "/flock.v1.ShepherdService/GetGuidance"
	ShepherdService_SummarizeSermon_FullMethodName = "/flock.v1.ShepherdService/SummarizeSermon"
	ShepherdService_GenerateStory_FullMethodName   = "/flock.v1.ShepherdService/GenerateStory"
)

// ShepherdServiceServer serves aI guidance, sermon summaries and children's stories.
type ShepherdServiceServer interface {
	GetGuidance(context.Context, *GetGuidanceRequest) (*GetGuidanceResponse, error)
	SummarizeSermon(context.Context, *SummarizeSermonRequest) (*SummarizeSermonResponse, error)
	GenerateStory(context.Context, *GenerateStoryRequest) (*GenerateStoryResponse, error)
}

// UnimplementedShepherdServiceServer answers every method with codes.Unimplemented.
type UnimplementedShepherdServiceServer struct{}

func (UnimplementedShepherdServiceServer) GetGuidance(context.Context, *GetGuidanceRequest) (*GetGuidanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGuidance not implemented")
}

func (UnimplementedShepherdServiceServer) SummarizeSermon(context.Context, *SummarizeSermonRequest) (*SummarizeSermonResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SummarizeSermon not implemented")
}

func (UnimplementedShepherdServiceServer) GenerateStory(context.Context, *GenerateStoryRequest) (*GenerateStoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateStory not implemented")
}

func RegisterShepherdServiceServer(s grpc.ServiceRegistrar, srv ShepherdServiceServer) {
	s.RegisterService(&ShepherdService_ServiceDesc, srv)
}

var ShepherdService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flock.v1.ShepherdService",
	HandlerType: (*ShepherdServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetGuidance",
			Handler:    unaryHandler(ShepherdService_GetGuidance_FullMethodName, ShepherdServiceServer.GetGuidance),
		},
		{
			MethodName: "SummarizeSermon",
			Handler:    unaryHandler(ShepherdService_SummarizeSermon_FullMethodName, ShepherdServiceServer.SummarizeSermon),
		},
		{
			MethodName: "GenerateStory",
			Handler:    unaryHandler(ShepherdService_GenerateStory_FullMethodName, ShepherdServiceServer.GenerateStory),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type ShepherdServiceClient interface {
	GetGuidance(ctx context.Context, in *GetGuidanceRequest, opts ...grpc.CallOption) (*GetGuidanceResponse, error)
	SummarizeSermon(ctx context.Context, in *SummarizeSermonRequest, opts ...grpc.CallOption) (*SummarizeSermonResponse, error)
	GenerateStory(ctx context.Context, in *GenerateStoryRequest, opts ...grpc.CallOption) (*GenerateStoryResponse, error)
}

type shepherdServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShepherdServiceClient(cc grpc.ClientConnInterface) ShepherdServiceClient {
	return &shepherdServiceClient{cc}
}

func (c *shepherdServiceClient) GetGuidance(ctx context.Context, in *GetGuidanceRequest, opts ...grpc.CallOption) (*GetGuidanceResponse, error) {
	return invoke[GetGuidanceResponse](ctx, c.cc, ShepherdService_GetGuidance_FullMethodName, in, opts)
}

func (c *shepherdServiceClient) SummarizeSermon(ctx context.Context, in *SummarizeSermonRequest, opts ...grpc.CallOption) (*SummarizeSermonResponse, error) {
	return invoke[SummarizeSermonResponse](ctx, c.cc, ShepherdService_SummarizeSermon_FullMethodName, in, opts)
}

func (c *shepherdServiceClient) GenerateStory(ctx context.Context, in *GenerateStoryRequest, opts ...grpc.CallOption) (*GenerateStoryResponse, error) {
	return invoke[GenerateStoryResponse](ctx, c.cc, ShepherdService_GenerateStory_FullMethodName, in, opts)
}
