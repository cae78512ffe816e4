package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// plainHasher keeps tests fast where bcrypt itself is not under test.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	return "plain$" + password, nil
}

func (plainHasher) Verify(hash, password string) bool {
	return hash == "plain$"+password
}

func newLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logging.NewJSONLogger(&buf, "debug")
	if err != nil {
		t.Fatalf("NewJSONLogger error: %v", err)
	}
	return l, &buf
}

func newMemoryService(t *testing.T) (*AuthService, *repomanager.InMemoryRepositoryManager, *bytes.Buffer) {
	t.Helper()
	rm := repomanager.NewInMemoryRepositoryManager()
	l, buf := newLogger(t)
	return NewAuthService(rm, plainHasher{}, l), rm, buf
}

// --- fakes for failure paths ---

type fakeUsersRepo struct {
	getOut    *models.User
	getErr    error
	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeSessionsRepo struct {
	createErr error
	findOut   *models.Session
	findErr   error
	deleteOut bool
	deleteErr error
	created   []*models.Session
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionsRepo) Find(ctx context.Context, token string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, token string) (bool, error) {
	return f.deleteOut, f.deleteErr
}

type fakeRepoManager struct {
	u     *fakeUsersRepo
	s     *fakeSessionsRepo
	txErr error
}

func (m *fakeRepoManager) Conn() dbx.DBTX { return nil }
func (m *fakeRepoManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if m.txErr != nil {
		return m.txErr
	}
	return fn(ctx, nil)
}
func (m *fakeRepoManager) RunMigrations(context.Context) error      { return nil }
func (m *fakeRepoManager) Ping(context.Context) error               { return nil }
func (m *fakeRepoManager) Close() error                             { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository       { return m.u }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository { return m.s }

func assertNotLogged(t *testing.T, buf *bytes.Buffer, secrets ...string) {
	t.Helper()
	for _, s := range secrets {
		if strings.Contains(buf.String(), s) {
			t.Fatalf("log output leaks %q: %s", s, buf.String())
		}
	}
}
