package service

import (
	"time"

	"github.com/itsquarehub/helpdesk-service/internal/auth"
	"github.com/itsquarehub/helpdesk-service/internal/config"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

// AuthService authenticates admins against the shared secret and issues
// short-lived bearer tokens for the admin routes.
type AuthService struct {
	cfg      config.AuthConfig
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		cfg:      cfg,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AdminTokenTTLMinutes),
	}
}

// Login verifies the submitted shared secret and returns a signed token.
// Any mismatch, including an empty submission, fails closed.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	if !auth.VerifyAdminPassword(s.cfg, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid Password")
	}
	token, expiresAt, err := s.tokenMgr.GenerateToken()
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, expiresAt, nil
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
