package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const EngineService_GenerateMove_FullMethodName = "/gomoku.EngineService/GenerateMove"

type EngineServiceClient interface {
	GenerateMove(ctx context.Context, in *MovesRequest, opts ...grpc.CallOption) (*MoveReply, error)
}

type engineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineServiceClient(cc grpc.ClientConnInterface) EngineServiceClient {
	return &engineServiceClient{cc}
}

func (c *engineServiceClient) GenerateMove(ctx context.Context, in *MovesRequest, opts ...grpc.CallOption) (*MoveReply, error) {
	out := emptyMoveReply()
	if err := c.cc.Invoke(ctx, EngineService_GenerateMove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type EngineServiceServer interface {
	GenerateMove(context.Context, *MovesRequest) (*MoveReply, error)
}

// UnimplementedEngineServiceServer can be embedded to keep servers
// compiling when methods are added.
type UnimplementedEngineServiceServer struct{}

func (UnimplementedEngineServiceServer) GenerateMove(context.Context, *MovesRequest) (*MoveReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateMove not implemented")
}

func RegisterEngineServiceServer(s grpc.ServiceRegistrar, srv EngineServiceServer) {
	s.RegisterService(&EngineService_ServiceDesc, srv)
}

func _EngineService_GenerateMove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := emptyMovesRequest()
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).GenerateMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_GenerateMove_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EngineServiceServer).GenerateMove(ctx, req.(*MovesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var EngineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gomoku.EngineService",
	HandlerType: (*EngineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateMove",
			Handler:    _EngineService_GenerateMove_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "engine.proto",
}
