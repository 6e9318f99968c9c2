package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/dbx"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/files"
	refreshtokensrepo "github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/refreshtokens"
	usersrepo "github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("file-%d", g.n)
}

// memFiles is a files.Repository with the same set semantics as the
// Postgres one: a grant is one element of a per-file set.
type memFiles struct {
	mu     sync.Mutex
	files  map[string]models.File
	shares map[string]map[string]time.Time

	createErr error
	deleteErr error
	addErr    error
	removeErr error
	touchErr  error
	getErr    error
	listErr   error
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string]models.File{}, shares: map[string]map[string]time.Time{}}
}

func (m *memFiles) put(f models.File) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[f.ID] = f
	set := map[string]time.Time{}
	for _, u := range f.SharedWith {
		set[u] = f.UpdatedAt
	}
	m.shares[f.ID] = set
}

// forceShare bypasses the owner filter to model a corrupted share set.
func (m *memFiles) forceShare(fileID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shares[fileID][userID] = time.Time{}
}

func (m *memFiles) snapshot(id string) *models.File {
	f := m.files[id]
	f.SharedWith = []string{}
	for u := range m.shares[id] {
		f.SharedWith = append(f.SharedWith, u)
	}
	slices.Sort(f.SharedWith)
	return &f
}

func (m *memFiles) Create(ctx context.Context, f *models.File) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[f.ID]; ok {
		return common.ErrorAlreadyExists
	}
	m.files[f.ID] = *f
	m.shares[f.ID] = map[string]time.Time{}
	return nil
}

func (m *memFiles) GetByID(ctx context.Context, id string) (*models.File, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[id]; !ok {
		return nil, common.ErrorNotFound
	}
	return m.snapshot(id), nil
}

func (m *memFiles) SetVisibility(ctx context.Context, id string, isPublic bool, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.IsPublic = isPublic
	f.UpdatedAt = at
	m.files[id] = f
	return nil
}

func (m *memFiles) AddShare(ctx context.Context, fileID, userID string, at time.Time) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[fileID]
	if !ok {
		return common.ErrorNotFound
	}
	if f.OwnerID == userID {
		return nil
	}
	if _, ok := m.shares[fileID][userID]; !ok {
		m.shares[fileID][userID] = at
	}
	return nil
}

func (m *memFiles) RemoveShare(ctx context.Context, fileID, userID string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.shares[fileID], userID)
	return nil
}

func (m *memFiles) Touch(ctx context.Context, id string, at time.Time) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return common.ErrorNotFound
	}
	f.UpdatedAt = at
	m.files[id] = f
	return nil
}

func (m *memFiles) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.files, id)
	delete(m.shares, id)
	return nil
}

func (m *memFiles) ListOwned(ctx context.Context, ownerID string) ([]*models.File, error) {
	return m.list(func(f models.File) bool { return f.OwnerID == ownerID })
}

// ListSharedWith deliberately skips the owner predicate so the service
// filter is what keeps owned files out.
func (m *memFiles) ListSharedWith(ctx context.Context, userID string) ([]*models.File, error) {
	return m.list(func(f models.File) bool {
		_, ok := m.shares[f.ID][userID]
		return ok
	})
}

func (m *memFiles) list(keep func(models.File) bool) ([]*models.File, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.File
	for id, f := range m.files {
		if keep(f) {
			out = append(out, m.snapshot(id))
		}
	}
	slices.SortFunc(out, func(a, b *models.File) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out, nil
}

type memUsers struct {
	mu    sync.Mutex
	users []*models.User

	createErr error
	getErr    error
	findErr   error
}

func (m *memUsers) add(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.users {
		if x.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	u.CreatedAt = fixedNow
	m.users = append(m.users, u)
	return u, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) ([]*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*models.User{}
	for _, u := range m.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	deleted   []string
	createErr error
	created   []models.RefreshToken
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, models.RefreshToken{UserID: userID, Token: token, Expires: expiresAt})
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeRepoManager struct {
	u *memUsers
	r *fakeRefreshRepo
	f *memFiles
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: &memUsers{}, r: &fakeRefreshRepo{}, f: newMemFiles()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Files(db dbx.DBTX) files.Repository                     { return m.f }
