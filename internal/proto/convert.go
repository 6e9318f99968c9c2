package proto

import (
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func UserFromModel(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{Id: u.ID, Email: u.Email, Name: u.Name, CreatedAt: timestamppb.New(u.CreatedAt)}
}

// FileFromModel maps a file record to its wire form. The storage key stays
// on the server.
func FileFromModel(f *models.File) *File {
	if f == nil {
		return nil
	}
	return &File{
		Id:         f.ID,
		OwnerId:    f.OwnerID,
		Name:       f.DisplayName,
		Size:       f.ByteSize,
		HumanSize:  models.HumanSize(f.ByteSize),
		MediaType:  f.MediaType,
		Kind:       string(models.KindOf(f.MediaType)),
		IsPublic:   f.IsPublic,
		SharedWith: f.SharedWith,
		CreatedAt:  timestamppb.New(f.CreatedAt),
		UpdatedAt:  timestamppb.New(f.UpdatedAt),
	}
}

func FilesFromModels(fs []*models.File) []*File {
	out := make([]*File, 0, len(fs))
	for _, f := range fs {
		out = append(out, FileFromModel(f))
	}
	return out
}
