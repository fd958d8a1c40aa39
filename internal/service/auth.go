package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/sebasmzg/characters-api/internal/events"
	"github.com/sebasmzg/characters-api/internal/hash"
	"github.com/sebasmzg/characters-api/internal/logging"
	"github.com/sebasmzg/characters-api/internal/models"
	"github.com/sebasmzg/characters-api/internal/repo"
	"github.com/sebasmzg/characters-api/pkg/tokens"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLen = 6

type AuthService struct {
	Users    *repo.UserRepo
	Revoked  *repo.RevokedTokens
	Secret   []byte
	Producer *events.Producer
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
}

func validateCredentials(email, password string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if err := validateCredentials(email, password); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid input")
		return models.User{}, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return models.User{}, err
	}

	user, err := s.Users.Create(models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			l.Warn("register_failed", "status", 409, "reason", "email already registered")
			return models.User{}, ErrConflict
		}
		return models.User{}, err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("register_successful", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if err := validateCredentials(email, password); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid input")
		return nil, err
	}

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		l.Warn("login_failed", "status", 401, "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := tokens.SignAccessToken(user.ID, user.Role, user.Email, s.Secret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	refreshToken, err := tokens.SignRefreshToken(user.ID, s.Secret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	// Only the latest refresh token stays valid, a new login overwrites any
	// previous one.
	if err := s.Users.SetRefreshToken(user.Email, refreshToken); err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("login_successful", "user_id", user.ID)
	return &LoginResult{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout is best-effort: the raw token is always denylisted, the stored
// refresh token is cleared only when the access token still parses into an
// identity, and neither branch fails the call.
func (s *AuthService) Logout(ctx context.Context, rawToken string) {
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	expiresAt := time.Now().Add(tokens.AccessTTL)
	claims, err := tokens.AccessClaimsFromToken(rawToken, s.Secret)
	if err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.Revoked.Revoke(rawToken, expiresAt)

	if err != nil {
		l.Info("logout_without_identity")
		return
	}

	if err := s.Users.ClearRefreshToken(claims.Email); err != nil {
		l.Warn("logout_refresh_not_cleared", "reason", "no user record", "email", claims.Email)
	}

	s.publish(ctx, fmt.Sprint(claims.UserID), map[string]interface{}{
		"type":   "user_logged_out",
		"userID": claims.UserID,
		"email":  claims.Email,
	})

	l.Info("logout_successful", "user_id", claims.UserID)
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]interface{}) {
	if err := s.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
