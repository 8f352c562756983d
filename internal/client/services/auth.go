// Package services contains application services for the shopfront client.
// This file defines the authentication session: login, register, logout and
// startup restore of a previously persisted session.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hvtran/shopfront/internal/client/models"
	"github.com/hvtran/shopfront/internal/client/repositories/kv"
	"github.com/hvtran/shopfront/internal/dbx"
	"github.com/hvtran/shopfront/internal/logging"
)

// Local kv keys holding the persisted session.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// AuthAPI is the slice of the API client the auth service depends on.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	SetTokens(access, refresh string)
	ClearTokens()
	OnTokensRefreshed(fn func(access, refresh string))
}

// AuthService manages the authenticated session.
//
// Contract:
//   - Login: authenticate against the server, persist the session locally.
//   - Register: create a new account on the server.
//   - Logout: best-effort server logout, always clears the local session.
//   - Restore: on startup, rebuild the session from the local store; returns
//     nil when no usable session is persisted.
//   - CurrentUser: fetch the fresh profile from the server.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	api AuthAPI
	db  *sql.DB
	log logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// local database. It also hooks the API client's token rotation so refreshed
// pairs are persisted immediately.
func NewAuthService(api AuthAPI, db *sql.DB, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	s := &authService{api: api, db: db, log: log}

	api.OnTokensRefreshed(func(access, refresh string) {
		ctx := context.Background()
		if err := s.saveTokens(ctx, access, refresh); err != nil {
			s.log.Warn(ctx, "failed to persist rotated tokens", "error", err)
		}
	})

	return s
}

func (s *authService) getKVRepo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// Login authenticates and persists the session (tokens + user profile) in a
// single transaction, then installs the tokens on the API client.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := s.saveSession(ctx, resp); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.api.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &resp.User, nil
}

// Register creates a new account on the server. It does not log the user in.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	user, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout tells the server to revoke the session and clears the persisted one
// regardless of whether the server call succeeded.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}

	s.api.ClearTokens()
	return s.clearSession(ctx)
}

// Restore rebuilds the session from the local store. A session with both
// tokens expired is discarded. Returns (nil, nil) when nothing usable is
// persisted; the caller proceeds as guest.
func (s *authService) Restore(ctx context.Context) (*models.User, error) {
	repo := s.getKVRepo()

	access, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return nil, err
	}
	userData, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	if len(access) == 0 || len(userData) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "corrupt persisted user, discarding session", "error", err)
		return nil, s.clearSession(ctx)
	}

	if tokenExpired(string(access)) && tokenExpired(string(refresh)) {
		s.log.Info(ctx, "persisted session expired", "user", user.Username)
		return nil, s.clearSession(ctx)
	}

	s.api.SetTokens(string(access), string(refresh))
	return &user, nil
}

// CurrentUser fetches the profile from the server and refreshes the
// persisted copy.
func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(user)
	if err == nil {
		if err := s.getKVRepo().Set(ctx, keyUser, data); err != nil {
			s.log.Warn(ctx, "failed to refresh persisted user", "error", err)
		}
	}
	return user, nil
}

// saveSession persists tokens and the user profile atomically.
func (s *authService) saveSession(ctx context.Context, resp *models.LoginResponse) error {
	userData, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(resp.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRefreshToken, []byte(resp.RefreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userData)
	})
}

func (s *authService) saveTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refresh))
	})
}

// clearSession removes the three session keys atomically. Cart slots are not
// touched here; the cart store owns those.
func (s *authService) clearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// tokenExpired inspects the JWT's exp claim without verifying the signature;
// the client has no signing key and only needs a liveness estimate. Tokens
// that fail to parse count as expired.
func tokenExpired(token string) bool {
	if token == "" {
		return true
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
