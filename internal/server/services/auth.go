package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// AuthService implements signup, login and logout on top of a
// CredentialStore and a SessionStore. It returns the sentinels from
// internal/common; storage failures are logged and reported as
// common.ErrorInternal.
type AuthService struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	logger      logging.Logger

	// dummyHash is verified against when a login names an unknown user, so
	// both failure paths pay for one hash comparison.
	dummyHash func() (string, error)
}

func NewAuthService(m repomanager.RepositoryManager, hasher auth.PasswordHasher, logger logging.Logger) *AuthService {
	return &AuthService{
		repomanager: m,
		hasher:      hasher,
		logger:      logger.With("module", "auth"),
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash("gophauth-unknown-user")
		}),
	}
}

func (s *AuthService) credentials(db dbx.DBTX) *CredentialStore {
	return NewCredentialStore(s.repomanager.Users(db), s.hasher)
}

func (s *AuthService) sessions(db dbx.DBTX) *SessionStore {
	return NewSessionStore(s.repomanager.Sessions(db))
}

// Signup registers username and opens its first session. The account and the
// session are written in one transaction where the backend supports it.
func (s *AuthService) Signup(ctx context.Context, username, password string) (string, error) {
	if err := validate(Credentials{Username: username, Password: password}, signupRules); err != nil {
		return "", err
	}

	_, err := s.credentials(s.repomanager.Conn()).FindByUsername(ctx, username)
	switch {
	case err == nil:
		return "", common.ErrUserAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return "", s.internal(ctx, "signup lookup failed", err)
	}

	var token string
	err = s.repomanager.RunInTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.credentials(tx).Create(ctx, username, password)
		if err != nil {
			return err
		}
		token, err = s.sessions(tx).Create(ctx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return "", common.ErrUserAlreadyExists
		}
		return "", s.internal(ctx, "signup failed", err)
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return token, nil
}

// Login checks the credentials and opens a new session. Earlier sessions of
// the same user stay valid. Unknown users and wrong passwords both yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := validate(Credentials{Username: username, Password: password}, loginRules); err != nil {
		return "", err
	}

	creds := s.credentials(s.repomanager.Conn())
	user, err := creds.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.verifyUnknownUser(ctx, password)
			return "", common.ErrInvalidCredentials
		}
		return "", s.internal(ctx, "login lookup failed", err)
	}

	if !creds.VerifyPassword(user, password) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.sessions(s.repomanager.Conn()).Create(ctx, user.ID)
	if err != nil {
		return "", s.internal(ctx, "session create failed", err)
	}
	return token, nil
}

func (s *AuthService) verifyUnknownUser(ctx context.Context, password string) {
	hash, err := s.dummyHash()
	if err != nil {
		s.logger.Warn(ctx, "dummy hash unavailable", "error", err)
		return
	}
	_ = s.hasher.Verify(hash, password)
}

// Logout revokes the session behind token. Revoking an unknown token
// succeeds; only a missing token is an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrNoSession
	}

	found, err := s.sessions(s.repomanager.Conn()).DeleteByToken(ctx, token)
	if err != nil {
		return s.internal(ctx, "session delete failed", err)
	}
	if !found {
		s.logger.Debug(ctx, "logout of unknown session")
	}
	return nil
}

// Authenticate resolves token to its session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrNoSession
	}

	session, err := s.sessions(s.repomanager.Conn()).FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, s.internal(ctx, "session lookup failed", err)
	}
	return session, nil
}

func (s *AuthService) internal(ctx context.Context, msg string, err error) error {
	s.logger.Error(ctx, msg, "error", err)
	return common.ErrorInternal
}
