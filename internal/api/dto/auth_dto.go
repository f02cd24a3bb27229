package dto

import "time"

// LoginRequest payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the signed admin token on success.
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
