// Package users declares the user store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

// Repository persists account records. Lookups return common.ErrorNotFound
// when no row matches.
type Repository interface {
	// Create inserts user (PasswordHash must already be set) and fills ID and
	// timestamps. Unique violations map to common.ErrDuplicateEmail or
	// common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Save writes the mutable profile columns of user. Identifiers and
	// credentials are never touched.
	Save(ctx context.Context, user *models.User) error
}
