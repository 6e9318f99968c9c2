package repomanager

import (
	"context"
	"database/sql"

	"github.com/Camilo-Usuga/xxi-storage/internal/dbx"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/files"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/refreshtokens"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can group several writes with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Files(db dbx.DBTX) files.Repository
}
