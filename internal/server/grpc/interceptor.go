package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/userauth/internal/api"
	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require a valid access token.
var protectedMethods = map[string]bool{
	api.UserAuthService_ListUsers_FullMethodName: true,
	api.UserAuthService_GetUser_FullMethodName:   true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	claims, err := s.guard.Authorize(tokenFromMetadata(ctx))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}

	return handler(auth.WithClaims(ctx, claims), req)
}

// tokenFromMetadata reads "authorization: Bearer <token>". A bare token is
// accepted as well.
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return ""
	}

	v := strings.TrimSpace(values[0])
	if scheme, rest, found := strings.Cut(v, " "); found && strings.EqualFold(scheme, common.TokenType) {
		return strings.TrimSpace(rest)
	}
	return v
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
