// Package services contains server-side business logic. This file implements
// UserService: login, registration and the user listing behind the guard.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/dbx"
	"github.com/dmitrijs2005/userauth/internal/logging"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/dmitrijs2005/userauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userauth/internal/server/repositories/users"
)

// Page size limits for ListUsers.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	TokenType string
	ExpiresIn int
	User      *models.UserView
}

// UserService provides the authentication flow and the user listing:
// - Login: verify credentials and mint an access token
// - Register: create a user with a hashed password
// - ListUsers / GetUser: read the directory
type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
	issuer      *auth.Issuer
	log         logging.Logger
	now         func() time.Time
}

// NewUserService constructs a UserService. db may be nil when the manager
// does not need a handle (in-memory directory).
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher, issuer *auth.Issuer, log logging.Logger) *UserService {
	var handle dbx.DBTX
	if db != nil {
		handle = db
	}
	return &UserService{
		db:          handle,
		repomanager: m,
		hasher:      hasher,
		issuer:      issuer,
		log:         log.With("module", "services.user"),
		now:         time.Now,
	}
}

func (s *UserService) users() users.Repository {
	return s.repomanager.Users(s.db)
}

// Login checks email and password and returns a signed token. Unknown email
// and wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifyDummy(password)
			return nil, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.Error(ctx, "token issuance failed", "user_id", user.ID, "error", err)
		if errors.Is(err, common.ErrConfiguration) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)

	return &LoginResult{
		Token:     token,
		TokenType: common.TokenType,
		ExpiresIn: s.issuer.ExpiresIn(),
		User:      user.View(),
	}, nil
}

// Register creates a user. A taken email yields common.ErrConflict, whether
// seen by the pre-check or by the store's unique constraint. Passwords over
// auth.MaxPasswordBytes are rejected with common.ErrValidation.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*models.UserView, error) {
	if email == "" || password == "" || fullName == "" {
		return nil, fmt.Errorf("%w: email, password and full name are required", common.ErrValidation)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password longer than %d bytes", common.ErrValidation, auth.MaxPasswordBytes)
	}

	repo := s.users()

	_, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrConflict
	case !errors.Is(err, common.ErrorNotFound):
		s.log.Error(ctx, "register lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	now := s.now().UTC()
	created, err := repo.Insert(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		s.log.Error(ctx, "user insert failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "user_id", created.ID)
	return created.View(), nil
}

// ListUsers returns one page of users ordered by id. page < 1 is treated as
// 1; pageSize < 1 becomes DefaultPageSize and is capped at MaxPageSize.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (*models.UserList, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	if page-1 > math.MaxInt/pageSize {
		// no such page; still report the total
		offset = math.MaxInt
	}

	items, total, err := s.users().List(ctx, offset, pageSize)
	if err != nil {
		s.log.Error(ctx, "list users failed", "error", err)
		return nil, common.ErrorInternal
	}

	views := make([]*models.UserView, 0, len(items))
	for _, u := range items {
		views = append(views, u.View())
	}

	return &models.UserList{
		Users:      views,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetUser returns one user or common.ErrorNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.UserView, error) {
	u, err := s.users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.log.Error(ctx, "get user failed", "user_id", id, "error", err)
		return nil, common.ErrorInternal
	}
	return u.View(), nil
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
