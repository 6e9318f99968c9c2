// Package files declares and implements persistence of file metadata records
// and their share grants.
package files

import (
	"context"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
)

// Repository stores file records. Share grants are kept as a set keyed by
// (file, user); AddShare and RemoveShare change exactly one element so
// concurrent grants never overwrite each other.
type Repository interface {
	Create(ctx context.Context, file *models.File) error
	// GetByID returns the record with SharedWith populated, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.File, error)
	SetVisibility(ctx context.Context, id string, isPublic bool, at time.Time) error
	// AddShare grants userID access. Granting twice is not an error and
	// granting the owner is silently ignored.
	AddShare(ctx context.Context, fileID, userID string, at time.Time) error
	// RemoveShare revokes a grant; revoking an absent grant is not an error.
	RemoveShare(ctx context.Context, fileID, userID string) error
	// Touch refreshes updated_at.
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	ListOwned(ctx context.Context, ownerID string) ([]*models.File, error)
	// ListSharedWith returns records userID holds a grant on, never the
	// ones userID owns.
	ListSharedWith(ctx context.Context, userID string) ([]*models.File, error)
}
