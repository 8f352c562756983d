package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvtran/shopfront/internal/client/localdb"
	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/repositories/kv"
)

type fakeAuthAPI struct {
	loginResp *models.LoginResponse
	loginErr  error

	registerResp *models.User
	registerErr  error

	logoutCalled bool
	logoutErr    error

	meResp *models.User
	meErr  error

	access, refresh string
	cleared         bool
	onRefreshed     func(access, refresh string)
}

func (f *fakeAuthAPI) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuthAPI) Me(context.Context) (*models.User, error) {
	return f.meResp, f.meErr
}

func (f *fakeAuthAPI) SetTokens(access, refresh string) {
	f.access, f.refresh = access, refresh
}

func (f *fakeAuthAPI) ClearTokens() {
	f.cleared = true
	f.access, f.refresh = "", ""
}

func (f *fakeAuthAPI) OnTokensRefreshed(fn func(access, refresh string)) {
	f.onRefreshed = fn
}

func setupAuthDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := localdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_PersistsSessionAndInstallsTokens(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{
			AccessToken:  "at",
			RefreshToken: "rt",
			User:         models.User{ID: 7, Username: "alice", Role: models.RoleCustomer},
		},
	}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	user, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "at", api.access)
	assert.Equal(t, "rt", api.refresh)

	repo := kv.NewSQLiteRepository(db)
	access, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.Equal(t, "at", string(access))

	userData, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	var persisted models.User
	require.NoError(t, json.Unmarshal(userData, &persisted))
	assert.Equal(t, "alice", persisted.Username)
}

func TestLogin_ErrorDoesNotPersist(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "wrong")
	require.Error(t, err)

	access, err := kv.NewSQLiteRepository(db).Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.Nil(t, access)
}

func TestLogout_ClearsSessionEvenIfServerFails(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{
			AccessToken:  "at",
			RefreshToken: "rt",
			User:         models.User{ID: 7, Username: "alice"},
		},
		logoutErr: errors.New("server down"),
	}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	assert.True(t, api.logoutCalled)
	assert.True(t, api.cleared)

	repo := kv.NewSQLiteRepository(db)
	for _, key := range []string{"accessToken", "refreshToken", "user"} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v, "key %s must be cleared", key)
	}
}

func TestRestore_NoPersistedSession(t *testing.T) {
	db := setupAuthDB(t)
	s := NewAuthService(&fakeAuthAPI{}, db, nil)

	user, err := s.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRestore_ValidSession(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	access := makeToken(t, time.Now().Add(time.Hour))
	userData, _ := json.Marshal(models.User{ID: 7, Username: "alice"})

	repo := kv.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "accessToken", []byte(access)))
	require.NoError(t, repo.Set(ctx, "refreshToken", []byte("opaque-refresh")))
	require.NoError(t, repo.Set(ctx, "user", userData))

	user, err := s.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, access, api.access)
}

func TestRestore_BothTokensExpired_DiscardsSession(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	expired := makeToken(t, time.Now().Add(-time.Hour))
	userData, _ := json.Marshal(models.User{ID: 7, Username: "alice"})

	repo := kv.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "accessToken", []byte(expired)))
	require.NoError(t, repo.Set(ctx, "refreshToken", []byte(expired)))
	require.NoError(t, repo.Set(ctx, "user", userData))

	user, err := s.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	v, err := repo.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.Nil(t, v, "expired session must be cleared")
}

func TestRestore_ExpiredAccessButLiveRefresh_Restores(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{}
	s := NewAuthService(api, db, nil)
	ctx := context.Background()

	expired := makeToken(t, time.Now().Add(-time.Hour))
	live := makeToken(t, time.Now().Add(24*time.Hour))
	userData, _ := json.Marshal(models.User{ID: 7, Username: "alice"})

	repo := kv.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "accessToken", []byte(expired)))
	require.NoError(t, repo.Set(ctx, "refreshToken", []byte(live)))
	require.NoError(t, repo.Set(ctx, "user", userData))

	user, err := s.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestTokenRotation_PersistsNewPair(t *testing.T) {
	db := setupAuthDB(t)
	api := &fakeAuthAPI{}
	NewAuthService(api, db, nil)

	require.NotNil(t, api.onRefreshed, "service must hook token rotation")
	api.onRefreshed("new-at", "new-rt")

	repo := kv.NewSQLiteRepository(db)
	access, err := repo.Get(context.Background(), "accessToken")
	require.NoError(t, err)
	assert.Equal(t, "new-at", string(access))
}

func TestTokenExpired(t *testing.T) {
	assert.True(t, tokenExpired(""))
	assert.True(t, tokenExpired("not-a-jwt"))
	assert.True(t, tokenExpired(makeToken(t, time.Now().Add(-time.Minute))))
	assert.False(t, tokenExpired(makeToken(t, time.Now().Add(time.Minute))))
}
