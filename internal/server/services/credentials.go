// Package services contains the server-side authentication logic: the
// credential and session stores and the AuthService that orchestrates
// signup, login and logout over them.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// CredentialStore owns user identity records. Plaintext passwords only pass
// through it on their way to the hasher.
type CredentialStore struct {
	users  users.Repository
	hasher auth.PasswordHasher
	now    func() time.Time
}

func NewCredentialStore(repo users.Repository, hasher auth.PasswordHasher) *CredentialStore {
	return &CredentialStore{users: repo, hasher: hasher, now: time.Now}
}

// FindByUsername returns common.ErrorNotFound when no account matches.
func (s *CredentialStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return u, nil
}

// Create hashes password and stores a new account. A concurrent insert of
// the same username surfaces as common.ErrDuplicateUsername.
func (s *CredentialStore) Create(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	id, err := auth.NewUserID()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           id,
		UserName:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	return u, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *CredentialStore) VerifyPassword(user *models.User, password string) bool {
	return s.hasher.Verify(user.PasswordHash, password)
}
