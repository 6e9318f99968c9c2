package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/dbx"
	"github.com/Camilo-Usuga/xxi-storage/internal/logging"
	sc "github.com/Camilo-Usuga/xxi-storage/internal/server/config"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/repomanager"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/storage"
)

const defaultMediaType = "application/octet-stream"

// UploadInput describes bytes to be stored for a new file.
type UploadInput struct {
	Name      string
	MediaType string
	Size      int64
	Body      io.Reader
}

// FileService owns the access-control state of files: who owns them,
// whether they are public and whom they are shared with. Every operation
// takes the requester explicitly; nothing here reads identity from ctx.
//
// The metadata record is the only source of truth for grants. The object
// store holds bytes and nothing else.
type FileService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	store         storage.ObjectStore
	resolver      *IdentityResolver
	clock         Clock
	idgen         IDGenerator
	log           logging.Logger
	maxUploadSize int64
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore, resolver *IdentityResolver,
	cfg *sc.Config, clock Clock, idgen IDGenerator, log logging.Logger) *FileService {
	return &FileService{
		db:            db,
		repomanager:   m,
		store:         store,
		resolver:      resolver,
		clock:         clock,
		idgen:         idgen,
		log:           log.With("module", "files"),
		maxUploadSize: cfg.MaxUploadSize,
	}
}

// Upload stores the bytes first and then creates the record, so a record
// never references bytes that were not written. If the record cannot be
// created the bytes are removed again.
func (s *FileService) Upload(ctx context.Context, requesterID string, in UploadInput) (*models.File, error) {
	if requesterID == "" {
		return nil, common.ErrorUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Body == nil {
		return nil, fmt.Errorf("%w: file name and body are required", common.ErrorInvalidArgument)
	}
	if in.Size < 0 || (s.maxUploadSize > 0 && in.Size > s.maxUploadSize) {
		return nil, fmt.Errorf("%w: size %d outside [0, %d]", common.ErrorInvalidArgument, in.Size, s.maxUploadSize)
	}

	mediaType := in.MediaType
	if mediaType == "" {
		mediaType = mime.TypeByExtension(path.Ext(name))
	}
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	now := s.clock.Now()
	f := &models.File{
		ID:          s.idgen.New(),
		OwnerID:     requesterID,
		StorageKey:  storage.NewStorageKey(now, requesterID),
		DisplayName: name,
		ByteSize:    in.Size,
		MediaType:   mediaType,
		IsPublic:    false,
		SharedWith:  []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Put(ctx, f.StorageKey, in.Body, in.Size, mediaType); err != nil {
		return nil, fmt.Errorf("store bytes: %w", err)
	}

	if err := s.repomanager.Files(s.db).Create(ctx, f); err != nil {
		createErr := fmt.Errorf("create file record: %w", err)
		if delErr := s.store.Delete(ctx, f.StorageKey); delErr != nil {
			s.log.Error(ctx, "orphaned bytes after failed upload", "storage_key", f.StorageKey, "error", delErr)
			return nil, errors.Join(createErr, fmt.Errorf("remove orphaned bytes: %w", delErr))
		}
		return nil, createErr
	}

	s.log.Info(ctx, "file uploaded", "file_id", f.ID, "owner_id", f.OwnerID, "size", f.ByteSize)
	return f, nil
}

// Get returns the record if requesterID may read it. Files the requester
// cannot read are reported as not found.
func (s *FileService) Get(ctx context.Context, fileID, requesterID string) (*models.File, error) {
	f, err := s.load(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !f.CanAccess(requesterID) {
		return nil, common.ErrorNotFound
	}
	return f, nil
}

// Open returns the record and a reader over its bytes for a requester who
// may read the file. The caller closes the reader.
func (s *FileService) Open(ctx context.Context, fileID, requesterID string) (*models.File, io.ReadCloser, error) {
	f, err := s.Get(ctx, fileID, requesterID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, f.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open bytes: %w", err)
	}
	return f, rc, nil
}

// DownloadURL returns a time-limited URL for the file's bytes. An empty
// requesterID is an anonymous caller and can only read public files.
func (s *FileService) DownloadURL(ctx context.Context, fileID, requesterID string) (string, error) {
	f, err := s.Get(ctx, fileID, requesterID)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, f.StorageKey, f.DisplayName)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return u, nil
}

// SetVisibility makes the file public or private. SharedWith is untouched.
func (s *FileService) SetVisibility(ctx context.Context, fileID, requesterID string, isPublic bool) (*models.File, error) {
	f, err := s.loadOwned(ctx, fileID, requesterID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.repomanager.Files(s.db).SetVisibility(ctx, fileID, isPublic, now); err != nil {
		return nil, fmt.Errorf("set visibility: %w", err)
	}
	f.IsPublic = isPublic
	f.UpdatedAt = now

	s.log.Info(ctx, "visibility changed", "file_id", fileID, "is_public", isPublic)
	return f, nil
}

// ShareWithEmail grants read access to the user registered under email.
// Sharing with the owner is a no-op. Repeated grants are idempotent and
// grants to different users commute.
func (s *FileService) ShareWithEmail(ctx context.Context, fileID, requesterID, email string) (*models.File, error) {
	f, err := s.loadOwned(ctx, fileID, requesterID)
	if err != nil {
		return nil, err
	}

	userID, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if f.IsOwner(userID) {
		s.log.Debug(ctx, "share with owner ignored", "file_id", fileID)
		return f, nil
	}

	now := s.clock.Now()
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)
		if err := repo.AddShare(ctx, fileID, userID, now); err != nil {
			return err
		}
		return repo.Touch(ctx, fileID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("share file: %w", err)
	}

	s.log.Info(ctx, "file shared", "file_id", fileID, "recipient_id", userID)
	return s.load(ctx, fileID)
}

// RevokeAccess removes userID's grant. Revoking an absent grant succeeds.
func (s *FileService) RevokeAccess(ctx context.Context, fileID, requesterID, userID string) (*models.File, error) {
	if _, err := s.loadOwned(ctx, fileID, requesterID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)
		if err := repo.RemoveShare(ctx, fileID, userID); err != nil {
			return err
		}
		return repo.Touch(ctx, fileID, now)
	})
	if dbx.IsInvalidText(err) {
		return nil, fmt.Errorf("revoke access: user id %q: %w", userID, common.ErrorInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("revoke access: %w", err)
	}

	s.log.Info(ctx, "access revoked", "file_id", fileID, "user_id", userID)
	return s.load(ctx, fileID)
}

// DeleteFile removes the bytes and then the record, never the other way
// round. Missing bytes count as removed, so retrying after a
// *common.PartialDeleteError finishes the job.
func (s *FileService) DeleteFile(ctx context.Context, fileID, requesterID string) error {
	f, err := s.loadOwned(ctx, fileID, requesterID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, f.StorageKey); err != nil {
		return fmt.Errorf("delete bytes: %w", err)
	}

	if err := s.repomanager.Files(s.db).Delete(ctx, fileID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// removed concurrently; both halves are gone
			return nil
		}
		s.log.Error(ctx, "file bytes removed but record kept", "file_id", fileID, "storage_key", f.StorageKey, "error", err)
		return &common.PartialDeleteError{FileID: fileID, StorageKey: f.StorageKey, Err: err}
	}

	s.log.Info(ctx, "file deleted", "file_id", fileID)
	return nil
}

func (s *FileService) load(ctx context.Context, fileID string) (*models.File, error) {
	if fileID == "" {
		return nil, common.ErrorNotFound
	}
	f, err := s.repomanager.Files(s.db).GetByID(ctx, fileID)
	if dbx.IsInvalidText(err) {
		// not a uuid, so no such file
		return nil, fmt.Errorf("load file %s: %w", fileID, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load file %s: %w", fileID, err)
	}
	return f, nil
}

func (s *FileService) loadOwned(ctx context.Context, fileID, requesterID string) (*models.File, error) {
	f, err := s.load(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !f.IsOwner(requesterID) {
		return nil, common.ErrorNotOwner
	}
	return f, nil
}
