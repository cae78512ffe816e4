package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/sessions"
)

// SessionStore issues and revokes opaque session tokens.
type SessionStore struct {
	sessions sessions.Repository
	newToken func() (string, error)
	now      func() time.Time
}

func NewSessionStore(repo sessions.Repository) *SessionStore {
	return &SessionStore{sessions: repo, newToken: auth.NewSessionToken, now: time.Now}
}

// Create stores a fresh session for userID and returns its token.
func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := s.newToken()
	if err != nil {
		return "", err
	}

	session := &models.Session{Token: token, UserID: userID, CreatedAt: s.now().UTC()}
	if err := s.sessions.Create(ctx, session); err != nil {
		if errors.Is(err, common.ErrDuplicateToken) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return token, nil
}

// DeleteByToken removes the session and reports whether it existed.
func (s *SessionStore) DeleteByToken(ctx context.Context, token string) (bool, error) {
	found, err := s.sessions.Delete(ctx, token)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return found, nil
}

// FindByToken returns common.ErrorNotFound for unknown tokens.
func (s *SessionStore) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return session, nil
}
