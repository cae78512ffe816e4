// Package users declares the repository contract for user accounts and its
// SQL and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

type Repository interface {
	// Create persists user. It returns common.ErrDuplicateUsername when the
	// username is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound when no account matches.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
