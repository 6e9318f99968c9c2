package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/repomanager"
)

// CatalogService answers which files a user can see. It is read-only.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// ListOwned returns the user's own files, newest first.
func (s *CatalogService) ListOwned(ctx context.Context, userID string) ([]*models.File, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	files, err := s.repomanager.Files(s.db).ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned files: %w", err)
	}
	if files == nil {
		files = []*models.File{}
	}
	return files, nil
}

// ListSharedWithMe returns files other users granted to userID. Files the
// user owns are never included, whatever their share set says.
func (s *CatalogService) ListSharedWithMe(ctx context.Context, userID string) ([]*models.File, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	files, err := s.repomanager.Files(s.db).ListSharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared files: %w", err)
	}

	result := make([]*models.File, 0, len(files))
	for _, f := range files {
		if f.IsOwner(userID) {
			continue
		}
		result = append(result, f)
	}
	return result, nil
}
