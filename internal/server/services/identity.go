package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/logging"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/repomanager"
)

// IdentityResolver maps an email address to a user ID. It never writes.
type IdentityResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewIdentityResolver(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *IdentityResolver {
	return &IdentityResolver{db: db, repomanager: m, log: log.With("module", "identity")}
}

// Resolve looks up the user whose email equals email exactly, ignoring
// surrounding whitespace. No match yields common.ErrorNotFound. Several
// matches resolve to the oldest identity and log a warning.
func (r *IdentityResolver) Resolve(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("identity for empty email: %w", common.ErrorNotFound)
	}

	matches, err := r.repomanager.Users(r.db).FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("resolve identity: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("identity for %q: %w", email, common.ErrorNotFound)
	case 1:
	default:
		ids := make([]string, len(matches))
		for i, u := range matches {
			ids[i] = u.ID
		}
		r.log.Warn(ctx, "email matches several identities, using the oldest", "email", email, "user_ids", ids)
	}

	return matches[0].ID, nil
}
