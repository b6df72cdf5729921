// Package grpc exposes the user service over gRPC: the UserAuthService
// handlers, the access-token interceptor and the standard health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userauth/internal/api"
	"github.com/dmitrijs2005/userauth/internal/logging"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/dmitrijs2005/userauth/internal/server/services"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the business logic the handlers call into.
type UserService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Register(ctx context.Context, email, password, fullName string) (*models.UserView, error)
	ListUsers(ctx context.Context, page, pageSize int) (*models.UserList, error)
	GetUser(ctx context.Context, id int64) (*models.UserView, error)
}

type GRPCServer struct {
	api.UnimplementedUserAuthServiceServer
	address  string
	users    UserService
	guard    *auth.Guard
	validate *validator.Validate
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, guard *auth.Guard) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		guard:    guard,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// newServer builds the grpc.Server with the service, the interceptor chain
// and health reporting registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterUserAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
