package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/api"
	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	result, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.LoginResponse{
		AccessToken: result.Token,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
		User:        toAPIUser(result.User),
	}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *api.SignUpRequest) (*api.SignUpResponse, error) {
	s.logger.Info(ctx, "Registration request")

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.users.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &api.SignUpResponse{User: toAPIUser(user)}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *api.ListUsersRequest) (*api.ListUsersResponse, error) {
	if id, ok := Caller(ctx); ok {
		s.logger.Debug(ctx, "List users", "caller_id", id, "page", req.Page, "page_size", req.PageSize)
	}

	list, err := s.users.ListUsers(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*api.User, 0, len(list.Users))
	for _, u := range list.Users {
		out = append(out, toAPIUser(u))
	}

	return &api.ListUsersResponse{
		Users:      out,
		TotalCount: list.TotalCount,
		Page:       list.Page,
		PageSize:   list.PageSize,
	}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *api.GetUserRequest) (*api.GetUserResponse, error) {
	user, err := s.users.GetUser(ctx, req.ID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetUserResponse{User: toAPIUser(user)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

// Caller returns the id of the authenticated user, if the request passed the
// access guard.
func Caller(ctx context.Context) (int64, bool) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *GRPCServer) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return status.Error(codes.InvalidArgument, common.ErrValidation.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}
	return status.Error(codes.InvalidArgument, common.ErrValidation.Error()+": "+strings.Join(msgs, "; "))
}

// toStatus maps service errors to gRPC statuses. Anything unrecognised is an
// opaque Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, common.ErrConflict.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, common.ErrValidation.Error())
	case errors.Is(err, common.ErrConfiguration):
		s.logger.Error(ctx, "server misconfigured", "error", err)
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func toAPIUser(u *models.UserView) *api.User {
	if u == nil {
		return nil
	}
	return &api.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
