// Package sessions declares the server-side repository contract for session
// records, together with its SQL and in-memory implementations.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking sessions.
type Repository interface {
	// Create stores a new session. Implementations return
	// common.ErrDuplicateToken if the token is already in use.
	Create(ctx context.Context, session *models.Session) error

	// Find looks up a session by its opaque token string.
	// Implementations return common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by its token string and reports whether a row
	// was removed. Deleting a non-existent token is not an error.
	Delete(ctx context.Context, token string) (bool, error)
}
