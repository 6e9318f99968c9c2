package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/logging"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/auth"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/config"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/models"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, cfg, stubClock{now: fixedNow}, logging.Nop{})
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.r.findOut = &models.RefreshToken{UserID: "u1", Expires: fixedNow.Add(10 * time.Minute)}
	s := newUserService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
	assert.Equal(t, []string{"refresh-xyz"}, rm.r.deleted)
	require.Len(t, rm.r.created, 1)
	assert.Equal(t, fixedNow.Add(2*time.Hour), rm.r.created[0].Expires)

	uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	rm.r.findOut = &models.RefreshToken{UserID: "u1", Expires: fixedNow.Add(-1 * time.Minute)}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	rm.r.findErr = common.ErrorNotFound
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	rm.r.findErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.r.findOut = &models.RefreshToken{UserID: "u1", Expires: fixedNow.Add(10 * time.Minute)}
	rm.r.delErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_GeneratePair_CreateErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.r.findOut = &models.RefreshToken{UserID: "u1", Expires: fixedNow.Add(10 * time.Minute)}
	rm.r.createErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error storing refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped create error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	ctx := context.Background()

	u, err := s.Register(ctx, "  alice@example.com ", " Alice ", "long-enough")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	ok, err := auth.CheckPassword(u.PasswordHash, "long-enough")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.Register(ctx, "alice@example.com", "", "long-enough")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Register(ctx, "not-an-email", "", "long-enough")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Register(ctx, "Bob <bob@example.com>", "", "long-enough")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = s.Register(ctx, "bob@example.com", "", "short")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestRegister_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	rm.u.createErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "bob@example.com", "", "long-enough")
	if err == nil || !regexp.MustCompile(`error creating user: .*boom`).MatchString(err.Error()) {
		t.Fatalf("Register expected wrapped error, got %v", err)
	}
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	ctx := context.Background()

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	rm := newFakeRepoManager()
	rm.u.add(&models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash})
	s := newUserService(t, db, rm)

	// unknown email → unauthorized
	_, err = s.Login(ctx, "ghost@example.com", "x")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	// wrong password → unauthorized
	_, err = s.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	pair, err := s.Login(ctx, " alice@example.com", "right-password")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 64)
	require.Len(t, rm.r.created, 1)
	assert.Equal(t, "u1", rm.r.created[0].UserID)

	// repository failure is not disguised as bad credentials
	rm.u.getErr = errBoom{}
	_, err = s.Login(ctx, "alice@example.com", "right-password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_CorruptHash(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newFakeRepoManager()
	rm.u.add(&models.User{ID: "u1", Email: "alice@example.com", PasswordHash: []byte("garbage")})
	s := newUserService(t, db, rm)

	_, err := s.Login(context.Background(), "alice@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogoutAndMe(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	ctx := context.Background()

	rm := newFakeRepoManager()
	rm.u.add(&models.User{ID: "u1", Email: "alice@example.com"})
	s := newUserService(t, db, rm)

	require.NoError(t, s.Logout(ctx, "tok"))
	assert.Equal(t, []string{"tok"}, rm.r.deleted)

	me, err := s.Me(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)

	_, err = s.Me(ctx, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Me(ctx, "u9")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	rm.r.delErr = errBoom{}
	assert.Error(t, s.Logout(ctx, "tok"))
}
