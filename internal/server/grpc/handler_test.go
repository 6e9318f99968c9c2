package grpc

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	pb "github.com/Camilo-Usuga/xxi-storage/internal/proto"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.User
	regErr  error

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error

	meResp *models.User
	meErr  error
	gotID  string
}

func (f *fakeUser) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Logout(ctx context.Context, refresh string) error { return f.logoutErr }
func (f *fakeUser) Me(ctx context.Context, userID string) (*models.User, error) {
	f.gotID = userID
	return f.meResp, f.meErr
}

type fakeFiles struct {
	gotRequester string
	gotEmail     string
	gotUpload    []byte

	uploadResp *models.File
	uploadErr  error

	url    string
	urlErr error

	visResp *models.File
	visErr  error

	shareResp *models.File
	shareErr  error

	revokeResp *models.File
	revokeErr  error

	deleteErr error
}

func (f *fakeFiles) Upload(ctx context.Context, requesterID string, in services.UploadInput) (*models.File, error) {
	f.gotRequester = requesterID
	f.gotUpload, _ = io.ReadAll(in.Body)
	return f.uploadResp, f.uploadErr
}
func (f *fakeFiles) DownloadURL(ctx context.Context, fileID, requesterID string) (string, error) {
	f.gotRequester = requesterID
	return f.url, f.urlErr
}
func (f *fakeFiles) SetVisibility(ctx context.Context, fileID, requesterID string, isPublic bool) (*models.File, error) {
	f.gotRequester = requesterID
	return f.visResp, f.visErr
}
func (f *fakeFiles) ShareWithEmail(ctx context.Context, fileID, requesterID, email string) (*models.File, error) {
	f.gotRequester = requesterID
	f.gotEmail = email
	return f.shareResp, f.shareErr
}
func (f *fakeFiles) RevokeAccess(ctx context.Context, fileID, requesterID, userID string) (*models.File, error) {
	f.gotRequester = requesterID
	return f.revokeResp, f.revokeErr
}
func (f *fakeFiles) DeleteFile(ctx context.Context, fileID, requesterID string) error {
	f.gotRequester = requesterID
	return f.deleteErr
}

type fakeCatalog struct {
	owned   []*models.File
	shared  []*models.File
	listErr error
}

func (f *fakeCatalog) ListOwned(ctx context.Context, userID string) ([]*models.File, error) {
	return f.owned, f.listErr
}
func (f *fakeCatalog) ListSharedWithMe(ctx context.Context, userID string) ([]*models.File, error) {
	return f.shared, f.listErr
}

// ---- helpers ----

func newServer(u userSvc, fs fileSvc, cs catalogSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		files:     fs,
		catalog:   cs,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func asUser(id string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, id)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeFiles{}, &fakeCatalog{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.User{ID: "42", Email: "a@b.c"}}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@b.c", Password: "password1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.User == nil || resp.User.Id != "42" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	u := &fakeUser{regErr: common.ErrorAlreadyExists}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Email: "a@b.c", Password: "password1"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", err)
	}
}

func TestLogin_UnauthorizedMapsToUnauthenticated(t *testing.T) {
	u := &fakeUser{loginErr: common.ErrorUnauthorized}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	_, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: "x"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != "a" || resp.RefreshToken != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_InternalOnError(t *testing.T) {
	u := &fakeUser{refreshErr: errors.New("oops")}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v (err=%v)", status.Code(err), err)
	}
	if status.Convert(err).Message() != "internal error" {
		t.Fatalf("internal detail leaked: %q", status.Convert(err).Message())
	}
}

func TestMe_UsesCallerFromContext(t *testing.T) {
	u := &fakeUser{meResp: &models.User{ID: "u1"}}
	s := newServer(u, &fakeFiles{}, &fakeCatalog{})
	if _, err := s.Me(asUser("u1"), &pb.MeRequest{}); err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if u.gotID != "u1" {
		t.Fatalf("service got %q", u.gotID)
	}
}

func TestUpload_PassesContent(t *testing.T) {
	fs := &fakeFiles{uploadResp: &models.File{ID: "f1", OwnerID: "u1", DisplayName: "a.txt", ByteSize: 5}}
	s := newServer(&fakeUser{}, fs, &fakeCatalog{})
	resp, err := s.Upload(asUser("u1"), &pb.UploadRequest{Name: "a.txt", Content: []byte("hello")})
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if string(fs.gotUpload) != "hello" || fs.gotRequester != "u1" {
		t.Fatalf("service got %q from %q", fs.gotUpload, fs.gotRequester)
	}
	if resp.File.HumanSize != "5 Bytes" {
		t.Fatalf("unexpected human size %q", resp.File.HumanSize)
	}
}

func TestSetVisibility_NotOwner(t *testing.T) {
	fs := &fakeFiles{visErr: common.ErrorNotOwner}
	s := newServer(&fakeUser{}, fs, &fakeCatalog{})
	_, err := s.SetVisibility(asUser("u2"), &pb.SetVisibilityRequest{FileId: "f1", IsPublic: true})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", err)
	}
}

func TestShare_UnknownEmailIsNotFound(t *testing.T) {
	fs := &fakeFiles{shareErr: common.ErrorNotFound}
	s := newServer(&fakeUser{}, fs, &fakeCatalog{})
	_, err := s.Share(asUser("u1"), &pb.ShareRequest{FileId: "f1", Email: "ghost@example.com"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestRevoke_OK(t *testing.T) {
	fs := &fakeFiles{revokeResp: &models.File{ID: "f1", SharedWith: []string{}}}
	s := newServer(&fakeUser{}, fs, &fakeCatalog{})
	resp, err := s.Revoke(asUser("u1"), &pb.RevokeRequest{FileId: "f1", UserId: "u2"})
	if err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if len(resp.File.SharedWith) != 0 {
		t.Fatalf("unexpected grants: %v", resp.File.SharedWith)
	}
}

func TestDelete_PartialIsDataLoss(t *testing.T) {
	fs := &fakeFiles{deleteErr: &common.PartialDeleteError{FileID: "f1", StorageKey: "k", Err: common.ErrorNotFound}}
	s := newServer(&fakeUser{}, fs, &fakeCatalog{})
	_, err := s.Delete(asUser("u1"), &pb.DeleteRequest{FileId: "f1"})
	if status.Code(err) != codes.DataLoss {
		t.Fatalf("want DataLoss, got %v", err)
	}
}

func TestListOwned_Transient(t *testing.T) {
	cs := &fakeCatalog{listErr: common.Transient(errors.New("db down"))}
	s := newServer(&fakeUser{}, &fakeFiles{}, cs)
	_, err := s.ListOwned(asUser("u1"), &pb.ListOwnedRequest{})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("want Unavailable, got %v", err)
	}
}
