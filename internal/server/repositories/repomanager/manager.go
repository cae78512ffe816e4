// Package repomanager wires repository implementations to a storage backend
// and exposes the transaction and migration hooks the services need.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	// Conn is the non-transactional handle passed to the repository factories.
	Conn() dbx.DBTX
	// RunInTx runs fn with a transactional handle and commits when fn
	// returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
