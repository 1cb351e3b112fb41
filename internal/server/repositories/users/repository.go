// Package users declares the account repository and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A taken email
	// yields common.ErrUserExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns common.ErrorNotFound when no account matches.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
