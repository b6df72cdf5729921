// Package users implements the user directory: lookups by email and id,
// uniqueness-enforcing insert, and paged listing.
package users

import (
	"context"

	"github.com/dmitrijs2005/userauth/internal/server/models"
)

// Repository is the user directory. Find methods return common.ErrorNotFound
// when nothing matches; Insert returns common.ErrConflict when the email is
// already taken.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}
