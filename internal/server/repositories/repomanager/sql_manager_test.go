package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestSQLRepositoryManager_ImplementsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var _ RepositoryManager = NewSQLRepositoryManager(db, dbx.DialectPostgres)
	var _ RepositoryManager = NewInMemoryRepositoryManager()
}

func TestSQLRepositoryManager_Factories(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewSQLRepositoryManager(db, dbx.DialectPostgres)

	assert.Same(t, db, m.Conn())
	assert.IsType(t, &users.SQLRepository{}, m.Users(db))
	assert.IsType(t, &sessions.SQLRepository{}, m.Sessions(db))
}

func TestSQLRepositoryManager_RunInTx(t *testing.T) {
	db, mock := newDB(t)
	defer db.Close()

	m := NewSQLRepositoryManager(db, dbx.DialectPostgres)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, m.RunInTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		_, isTx := tx.(*sql.Tx)
		assert.True(t, isTx, "fn must receive the transaction")
		return nil
	}))

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := m.RunInTx(context.Background(), func(ctx context.Context, tx dbx.DBTX) error {
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepositoryManager_PingAndClose(t *testing.T) {
	db, mock := newDB(t)

	m := NewSQLRepositoryManager(db, dbx.DialectPostgres)

	mock.ExpectPing()
	require.NoError(t, m.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("unreachable"))
	assert.Error(t, m.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_UsesDialectDirectory(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	for _, d := range []dbx.Dialect{dbx.DialectPostgres, dbx.DialectSQLite} {
		var gotDir string
		stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			gotDir = dir
			if len(opts) != 0 {
				return errors.New("unexpected opts")
			}
			return nil
		})

		m := NewSQLRepositoryManager(db, d)
		require.NoError(t, m.RunMigrations(context.Background()))
		assert.Equal(t, string(d), gotDir)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m := NewSQLRepositoryManager(db, dbx.DialectPostgres)
	err := m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Equal(t, "goose up: boom", err.Error())
}
