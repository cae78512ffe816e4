package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open picks a backend from the DSN scheme, opens it, checks connectivity
// and applies migrations.
//
//	memory://                       process-local maps
//	postgres://… / postgresql://…   PostgreSQL through pgx
//	sqlite://<path> / file:<path>   SQLite through modernc.org/sqlite
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	switch {
	case dsn == "" || dsn == "memory" || strings.HasPrefix(dsn, "memory://"):
		return NewInMemoryRepositoryManager(), nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		return prepare(ctx, db, dbx.DialectPostgres)

	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		db, err := sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		// SQLite allows one writer at a time; a single connection keeps
		// concurrent requests from failing with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return prepare(ctx, db, dbx.DialectSQLite)

	default:
		return nil, fmt.Errorf("unsupported database dsn %q", redact(dsn))
	}
}

func prepare(ctx context.Context, db *sql.DB, dialect dbx.Dialect) (RepositoryManager, error) {
	m := NewSQLRepositoryManager(db, dialect)

	if err := m.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func sqliteDSN(dsn string) string {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

// redact keeps the scheme of a DSN and drops the rest, which may hold
// credentials.
func redact(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://…"
	}
	return "…"
}
