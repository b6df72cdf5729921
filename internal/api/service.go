package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "userauth.UserAuthService"

const (
	UserAuthService_Login_FullMethodName     = "/userauth.UserAuthService/Login"
	UserAuthService_SignUp_FullMethodName    = "/userauth.UserAuthService/SignUp"
	UserAuthService_ListUsers_FullMethodName = "/userauth.UserAuthService/ListUsers"
	UserAuthService_GetUser_FullMethodName   = "/userauth.UserAuthService/GetUser"
	UserAuthService_Ping_FullMethodName      = "/userauth.UserAuthService/Ping"
)

// UserAuthServiceServer is the server API for UserAuthService.
type UserAuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// UnimplementedUserAuthServiceServer answers every method with
// codes.Unimplemented. Embed it to stay forward compatible.
type UnimplementedUserAuthServiceServer struct{}

func (UnimplementedUserAuthServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedUserAuthServiceServer) SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
}
func (UnimplementedUserAuthServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedUserAuthServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedUserAuthServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func RegisterUserAuthServiceServer(s grpc.ServiceRegistrar, srv UserAuthServiceServer) {
	s.RegisterService(&UserAuthService_ServiceDesc, srv)
}

// unary builds a grpc method handler for one request type.
func unary[Req any, Resp any](fullMethod string, call func(UserAuthServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UserAuthServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UserAuthServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// UserAuthService_ServiceDesc is the grpc.ServiceDesc for UserAuthService.
var UserAuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserAuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unary(UserAuthService_Login_FullMethodName, UserAuthServiceServer.Login)},
		{MethodName: "SignUp", Handler: unary(UserAuthService_SignUp_FullMethodName, UserAuthServiceServer.SignUp)},
		{MethodName: "ListUsers", Handler: unary(UserAuthService_ListUsers_FullMethodName, UserAuthServiceServer.ListUsers)},
		{MethodName: "GetUser", Handler: unary(UserAuthService_GetUser_FullMethodName, UserAuthServiceServer.GetUser)},
		{MethodName: "Ping", Handler: unary(UserAuthService_Ping_FullMethodName, UserAuthServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "userauth/api",
}
