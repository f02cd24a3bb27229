package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/itsquarehub/helpdesk-service/internal/config"
)

// HashPassword hashes a plaintext password with the given cost. Used by
// deployments that provision ADMIN_PASSWORD_HASH instead of the plaintext
// shared secret.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyAdminPassword checks a submitted password against the configured
// shared secret. A bcrypt hash takes precedence when configured; otherwise
// the plaintext secret is compared in constant time. Fails closed when no
// secret is configured or the submission is empty.
func VerifyAdminPassword(cfg config.AuthConfig, submitted string) bool {
	if submitted == "" {
		return false
	}
	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(submitted)) == nil
	}
	if cfg.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cfg.AdminPassword), []byte(submitted)) == 1
}
