package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsquarehub/helpdesk-service/internal/api/dto"
	"github.com/itsquarehub/helpdesk-service/internal/service"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

// AuthHandler manages the admin login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login POST /api/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, expiresAt, err := h.auth.Login(req.Password)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.HTTPStatus == http.StatusUnauthorized {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": domainErr.Message,
			})
		}
		return err
	}

	return c.JSON(dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
