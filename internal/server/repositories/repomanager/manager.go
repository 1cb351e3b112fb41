package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophforum/internal/dbx"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/threads"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Threads(db dbx.DBTX) threads.Repository
}
