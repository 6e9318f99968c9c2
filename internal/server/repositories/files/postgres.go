package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/dbx"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectFiles reads file columns plus the comma separated share set.
const selectFiles = `
		SELECT f.id, f.owner_id, f.storage_key, f.display_name, f.byte_size, f.media_type,
			f.is_public, f.created_at, f.updated_at,
			COALESCE(string_agg(s.user_id::text, ',' ORDER BY s.user_id), '') AS shared_with
		FROM files f
		LEFT JOIN file_shares s ON s.file_id = f.id
`

// Create inserts a new record. A duplicate id or storage key yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, f *models.File) error {
	query := `
		INSERT INTO files (id, owner_id, storage_key, display_name, byte_size, media_type, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.OwnerID, f.StorageKey, f.DisplayName, f.ByteSize, f.MediaType, f.IsPublic, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return nil
}

// GetByID returns a single record with its share set.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := selectFiles + `
		WHERE f.id = $1
		GROUP BY f.id
	`
	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", dbx.Classify(err))
	}
	return f, nil
}

// SetVisibility updates is_public and updated_at. Exactly one row must match.
func (r *PostgresRepository) SetVisibility(ctx context.Context, id string, isPublic bool, at time.Time) error {
	query := `UPDATE files SET is_public = $2, updated_at = $3 WHERE id = $1`
	return r.execOne(ctx, "failed to update visibility", query, id, isPublic, at)
}

// Touch refreshes updated_at. Exactly one row must match.
func (r *PostgresRepository) Touch(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE files SET updated_at = $2 WHERE id = $1`
	return r.execOne(ctx, "failed to touch file", query, id, at)
}

// AddShare inserts one grant. The owner is filtered out in SQL so a grant
// can never name the owner, and ON CONFLICT keeps repeated grants idempotent.
// A missing file or user yields common.ErrorNotFound.
func (r *PostgresRepository) AddShare(ctx context.Context, fileID, userID string, at time.Time) error {
	query := `
		INSERT INTO file_shares (file_id, user_id, granted_at)
		SELECT f.id, $2, $3 FROM files f
		WHERE f.id = $1 AND f.owner_id <> $2
		ON CONFLICT (file_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, fileID, userID, at); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("failed to add share: %w", dbx.Classify(err))
	}
	return nil
}

// RemoveShare deletes one grant if present.
func (r *PostgresRepository) RemoveShare(ctx context.Context, fileID, userID string) error {
	query := `DELETE FROM file_shares WHERE file_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, fileID, userID); err != nil {
		return fmt.Errorf("failed to remove share: %w", dbx.Classify(err))
	}
	return nil
}

// Delete removes the record; grants go with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id = $1`
	return r.execOne(ctx, "failed to delete file", query, id)
}

// ListOwned returns the owner's records, newest first.
func (r *PostgresRepository) ListOwned(ctx context.Context, ownerID string) ([]*models.File, error) {
	query := selectFiles + `
		WHERE f.owner_id = $1
		GROUP BY f.id
		ORDER BY f.created_at DESC, f.id
	`
	return r.list(ctx, query, ownerID)
}

// ListSharedWith returns records with a grant for userID that userID does
// not own, newest first.
func (r *PostgresRepository) ListSharedWith(ctx context.Context, userID string) ([]*models.File, error) {
	query := selectFiles + `
		WHERE f.owner_id <> $1
			AND EXISTS (SELECT 1 FROM file_shares g WHERE g.file_id = f.id AND g.user_id = $1)
		GROUP BY f.id
		ORDER BY f.created_at DESC, f.id
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.File, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", dbx.Classify(err))
	}
	defer rows.Close()

	var result []*models.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) execOne(ctx context.Context, what string, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, dbx.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.File, error) {
	var (
		f      models.File
		shared string
	)
	err := s.Scan(&f.ID, &f.OwnerID, &f.StorageKey, &f.DisplayName, &f.ByteSize, &f.MediaType,
		&f.IsPublic, &f.CreatedAt, &f.UpdatedAt, &shared)
	if err != nil {
		return nil, err
	}
	f.SharedWith = splitShares(shared)
	return &f, nil
}

func splitShares(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
