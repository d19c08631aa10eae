// Package v1alpha1 exposes the session service over gRPC as
// narrative.v1alpha1.StoryService. Messages are google.protobuf.Struct
// documents keyed in snake_case.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "narrative.v1alpha1.StoryService"

// Method names
const (
	MethodRegisterHero   = "RegisterHero"
	MethodCreateSession  = "CreateSession"
	MethodGetStatus      = "GetStatus"
	MethodAdvance        = "Advance"
	MethodChooseOption   = "ChooseOption"
	MethodMove           = "Move"
	MethodLocationPrompt = "LocationPrompt"
	MethodGetInventory   = "GetInventory"
	MethodGiveItem       = "GiveItem"
	MethodUseItem        = "UseItem"
	MethodEndSession     = "EndSession"
)

// FullMethod returns the invoke path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StoryServiceServer is the server API for StoryService
type StoryServiceServer interface {
	RegisterHero(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Advance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChooseOption(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Move(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LocationPrompt(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetInventory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GiveItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(StoryServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// StoryServiceDesc describes StoryService for grpc.ServiceRegistrar
var StoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodRegisterHero, StoryServiceServer.RegisterHero),
		methodDesc(MethodCreateSession, StoryServiceServer.CreateSession),
		methodDesc(MethodGetStatus, StoryServiceServer.GetStatus),
		methodDesc(MethodAdvance, StoryServiceServer.Advance),
		methodDesc(MethodChooseOption, StoryServiceServer.ChooseOption),
		methodDesc(MethodMove, StoryServiceServer.Move),
		methodDesc(MethodLocationPrompt, StoryServiceServer.LocationPrompt),
		methodDesc(MethodGetInventory, StoryServiceServer.GetInventory),
		methodDesc(MethodGiveItem, StoryServiceServer.GiveItem),
		methodDesc(MethodUseItem, StoryServiceServer.UseItem),
		methodDesc(MethodEndSession, StoryServiceServer.EndSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "narrative/v1alpha1/story.proto",
}

// RegisterStoryServiceServer registers srv on s
func RegisterStoryServiceServer(s grpc.ServiceRegistrar, srv StoryServiceServer) {
	s.RegisterService(&StoryServiceDesc, srv)
}

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StoryServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StoryServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// StoryServiceClient is the client API for StoryService
type StoryServiceClient interface {
	RegisterHero(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Advance(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ChooseOption(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Move(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	LocationPrompt(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GiveItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UseItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EndSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type storyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStoryServiceClient creates a client on top of cc
func NewStoryServiceClient(cc grpc.ClientConnInterface) StoryServiceClient {
	return &storyServiceClient{cc: cc}
}

func (c *storyServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storyServiceClient) RegisterHero(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRegisterHero, in, opts)
}

func (c *storyServiceClient) CreateSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCreateSession, in, opts)
}

func (c *storyServiceClient) GetStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetStatus, in, opts)
}

func (c *storyServiceClient) Advance(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAdvance, in, opts)
}

func (c *storyServiceClient) ChooseOption(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodChooseOption, in, opts)
}

func (c *storyServiceClient) Move(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodMove, in, opts)
}

func (c *storyServiceClient) LocationPrompt(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodLocationPrompt, in, opts)
}

func (c *storyServiceClient) GetInventory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetInventory, in, opts)
}

func (c *storyServiceClient) GiveItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGiveItem, in, opts)
}

func (c *storyServiceClient) UseItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUseItem, in, opts)
}

func (c *storyServiceClient) EndSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodEndSession, in, opts)
}
