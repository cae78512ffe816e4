package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// SQLRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// Create inserts a new session row.
func (r *SQLRepository) Create(ctx context.Context, session *models.Session) error {
	query := r.dialect.Rebind(`
		INSERT INTO sessions (token, user_id, created_at)
		VALUES (?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, session.Token, session.UserID, session.CreatedAt); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrDuplicateToken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Find returns the session row for the given token string.
func (r *SQLRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	query := r.dialect.Rebind(`
		SELECT token, user_id, created_at
		FROM sessions
		WHERE token = ?
	`)
	session := &models.Session{}
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.UserID, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return session, nil
}

// Delete removes a session by its token string.
func (r *SQLRepository) Delete(ctx context.Context, token string) (bool, error) {
	query := r.dialect.Rebind(`
		DELETE FROM sessions
		WHERE token = ?
	`)
	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
