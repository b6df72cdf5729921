package client

import (
	"context"

	"github.com/dmitrijs2005/userauth/internal/api"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Register(ctx context.Context, email, password, fullName string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	ListUsers(ctx context.Context, page, pageSize int) (*api.ListUsersResponse, error)
	GetUser(ctx context.Context, id int64) (*api.User, error)
	Ping(ctx context.Context) error
}
