package httpapi

import (
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
)

type userJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// fileJSON is a file record as the HTTP API returns it. The storage key
// never leaves the server.
type fileJSON struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	HumanSize  string    `json:"human_size"`
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	IsPublic   bool      `json:"is_public"`
	SharedWith []string  `json:"shared_with"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type userResponse struct {
	User *userJSON `json:"user"`
}

type fileResponse struct {
	File *fileJSON `json:"file"`
}

type filesResponse struct {
	Files []*fileJSON `json:"files"`
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func newUserJSON(u *models.User) *userJSON {
	if u == nil {
		return nil
	}
	return &userJSON{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func newFileJSON(f *models.File) *fileJSON {
	if f == nil {
		return nil
	}
	shared := f.SharedWith
	if shared == nil {
		shared = []string{}
	}
	return &fileJSON{
		ID:         f.ID,
		OwnerID:    f.OwnerID,
		Name:       f.DisplayName,
		Size:       f.ByteSize,
		HumanSize:  models.HumanSize(f.ByteSize),
		Type:       f.MediaType,
		Kind:       string(models.KindOf(f.MediaType)),
		IsPublic:   f.IsPublic,
		SharedWith: shared,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func newFilesResponse(fs []*models.File) filesResponse {
	out := make([]*fileJSON, 0, len(fs))
	for _, f := range fs {
		out = append(out, newFileJSON(f))
	}
	return filesResponse{Files: out}
}
