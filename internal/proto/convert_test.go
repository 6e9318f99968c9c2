package proto

import (
	"testing"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
)

func TestFileFromModel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f := FileFromModel(&models.File{
		ID:          "f1",
		OwnerID:     "u1",
		StorageKey:  "users/u1/2026/03/10/x",
		DisplayName: "photo.png",
		ByteSize:    1536,
		MediaType:   "image/png",
		SharedWith:  []string{"u2"},
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	assert.Equal(t, "f1", f.GetId())
	assert.Equal(t, "photo.png", f.GetName())
	assert.Equal(t, "1.5 KB", f.GetHumanSize())
	assert.Equal(t, "image", f.GetKind())
	assert.Equal(t, []string{"u2"}, f.GetSharedWith())
	assert.True(t, now.Equal(f.GetCreatedAt().AsTime()))
	assert.Nil(t, FileFromModel(nil))
	assert.Empty(t, FilesFromModels(nil))
}

func TestUserFromModel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	u := UserFromModel(&models.User{ID: "u1", Email: "a@example.com", Name: "Alice", CreatedAt: now})

	assert.Equal(t, "u1", u.GetId())
	assert.Equal(t, "a@example.com", u.GetEmail())
	assert.True(t, now.Equal(u.GetCreatedAt().AsTime()))
	assert.Nil(t, UserFromModel(nil))
}

func TestUploadRequest_ContentTravelsRaw(t *testing.T) {
	content := make([]byte, 3000)
	for i := range content {
		content[i] = byte(i)
	}
	in := &UploadRequest{Name: "a.bin", MediaType: "application/octet-stream", Content: content}

	b, err := gproto.Marshal(in)
	require.NoError(t, err)
	// name, media type and tag/length bytes are all the overhead there is
	assert.Less(t, len(b), len(content)+64)

	var out UploadRequest
	require.NoError(t, gproto.Unmarshal(b, &out))
	assert.Equal(t, content, out.GetContent())
	assert.Equal(t, "a.bin", out.GetName())
}

func TestDescriptor_ServiceShape(t *testing.T) {
	sd := File_xxistorage_proto.Services().ByName("FileService")
	require.NotNil(t, sd)
	assert.Equal(t, len(FileService_ServiceDesc.Methods), sd.Methods().Len())

	share := sd.Methods().ByName("Share")
	require.NotNil(t, share)
	assert.Equal(t, "xxistorage.ShareRequest", string(share.Input().FullName()))
	assert.Equal(t, "xxistorage.FileResponse", string(share.Output().FullName()))
}
