package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Auth_Register_FullMethodName        = "/zkauth.Auth/Register"
	Auth_CreateChallenge_FullMethodName = "/zkauth.Auth/CreateChallenge"
	Auth_VerifyResponse_FullMethodName  = "/zkauth.Auth/VerifyResponse"
)

// AuthClient is the client API for the zkauth.Auth service.
type AuthClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	CreateChallenge(ctx context.Context, in *CreateChallengeRequest, opts ...grpc.CallOption) (*CreateChallengeResponse, error)
	VerifyResponse(ctx context.Context, in *VerifyResponseRequest, opts ...grpc.CallOption) (*VerifyResponseResponse, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient returns a client whose calls are always encoded with the
// CBOR codec.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *authClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.invoke(ctx, Auth_Register_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) CreateChallenge(ctx context.Context, in *CreateChallengeRequest, opts ...grpc.CallOption) (*CreateChallengeResponse, error) {
	out := new(CreateChallengeResponse)
	if err := c.invoke(ctx, Auth_CreateChallenge_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) VerifyResponse(ctx context.Context, in *VerifyResponseRequest, opts ...grpc.CallOption) (*VerifyResponseResponse, error) {
	out := new(VerifyResponseResponse)
	if err := c.invoke(ctx, Auth_VerifyResponse_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServer is the server API for the zkauth.Auth service. Implementations
// must embed UnimplementedAuthServer.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	CreateChallenge(context.Context, *CreateChallengeRequest) (*CreateChallengeResponse, error)
	VerifyResponse(context.Context, *VerifyResponseRequest) (*VerifyResponseResponse, error)
	mustEmbedUnimplementedAuthServer()
}

type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServer) CreateChallenge(context.Context, *CreateChallengeRequest) (*CreateChallengeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateChallenge not implemented")
}
func (UnimplementedAuthServer) VerifyResponse(context.Context, *VerifyResponseRequest) (*VerifyResponseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyResponse not implemented")
}
func (UnimplementedAuthServer) mustEmbedUnimplementedAuthServer() {}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func _Auth_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Auth_Register_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_CreateChallenge_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).CreateChallenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Auth_CreateChallenge_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).CreateChallenge(ctx, req.(*CreateChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_VerifyResponse_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VerifyResponseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).VerifyResponse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Auth_VerifyResponse_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).VerifyResponse(ctx, req.(*VerifyResponseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Auth_ServiceDesc is the grpc.ServiceDesc for the zkauth.Auth service.
var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "zkauth.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _Auth_Register_Handler,
		},
		{
			MethodName: "CreateChallenge",
			Handler:    _Auth_CreateChallenge_Handler,
		},
		{
			MethodName: "VerifyResponse",
			Handler:    _Auth_VerifyResponse_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "zkauth/auth",
}
