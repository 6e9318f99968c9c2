package httpapi

import (
	"context"
	"io"
	"strings"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/services"
)

type fakeUsers struct {
	user   *models.User
	tokens *services.TokenPair
	err    error

	loggedOut string
}

func (f *fakeUsers) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u-new", Email: email, Name: name}, nil
}
func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	return f.tokens, f.err
}
func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.tokens, f.err
}
func (f *fakeUsers) Logout(ctx context.Context, refreshToken string) error {
	f.loggedOut = refreshToken
	return f.err
}
func (f *fakeUsers) Me(ctx context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: userID}, nil
}

// fakeFiles authorizes against a single in-memory record.
type fakeFiles struct {
	file    *models.File
	content string
	url     string
	err     error

	gotRequester string
	gotEmail     string
	gotUpload    string
	gotUploadIn  services.UploadInput
}

func (f *fakeFiles) lookup(fileID, requesterID string) (*models.File, error) {
	f.gotRequester = requesterID
	if f.err != nil {
		return nil, f.err
	}
	if f.file == nil || f.file.ID != fileID || !f.file.CanAccess(requesterID) {
		return nil, common.ErrorNotFound
	}
	return f.file, nil
}

func (f *fakeFiles) owned(fileID, requesterID string) (*models.File, error) {
	file, err := f.lookup(fileID, requesterID)
	if err != nil {
		return nil, err
	}
	if !file.IsOwner(requesterID) {
		return nil, common.ErrorNotOwner
	}
	return file, nil
}

func (f *fakeFiles) Upload(ctx context.Context, requesterID string, in services.UploadInput) (*models.File, error) {
	f.gotRequester = requesterID
	f.gotUploadIn = in
	b, _ := io.ReadAll(in.Body)
	f.gotUpload = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &models.File{ID: "f-new", OwnerID: requesterID, DisplayName: in.Name, ByteSize: in.Size, MediaType: in.MediaType}, nil
}
func (f *fakeFiles) Get(ctx context.Context, fileID, requesterID string) (*models.File, error) {
	return f.lookup(fileID, requesterID)
}
func (f *fakeFiles) Open(ctx context.Context, fileID, requesterID string) (*models.File, io.ReadCloser, error) {
	file, err := f.lookup(fileID, requesterID)
	if err != nil {
		return nil, nil, err
	}
	return file, io.NopCloser(strings.NewReader(f.content)), nil
}
func (f *fakeFiles) DownloadURL(ctx context.Context, fileID, requesterID string) (string, error) {
	if _, err := f.lookup(fileID, requesterID); err != nil {
		return "", err
	}
	return f.url, nil
}
func (f *fakeFiles) SetVisibility(ctx context.Context, fileID, requesterID string, isPublic bool) (*models.File, error) {
	file, err := f.owned(fileID, requesterID)
	if err != nil {
		return nil, err
	}
	file.IsPublic = isPublic
	return file, nil
}
func (f *fakeFiles) ShareWithEmail(ctx context.Context, fileID, requesterID, email string) (*models.File, error) {
	f.gotEmail = email
	file, err := f.owned(fileID, requesterID)
	if err != nil {
		return nil, err
	}
	file.SharedWith = append(file.SharedWith, "u-"+email)
	return file, nil
}
func (f *fakeFiles) RevokeAccess(ctx context.Context, fileID, requesterID, userID string) (*models.File, error) {
	file, err := f.owned(fileID, requesterID)
	if err != nil {
		return nil, err
	}
	kept := []string{}
	for _, id := range file.SharedWith {
		if id != userID {
			kept = append(kept, id)
		}
	}
	file.SharedWith = kept
	return file, nil
}
func (f *fakeFiles) DeleteFile(ctx context.Context, fileID, requesterID string) error {
	_, err := f.owned(fileID, requesterID)
	return err
}

type fakeCatalog struct {
	owned  []*models.File
	shared []*models.File
	err    error

	gotUser string
}

func (f *fakeCatalog) ListOwned(ctx context.Context, userID string) ([]*models.File, error) {
	f.gotUser = userID
	return f.owned, f.err
}
func (f *fakeCatalog) ListSharedWithMe(ctx context.Context, userID string) ([]*models.File, error) {
	f.gotUser = userID
	return f.shared, f.err
}
