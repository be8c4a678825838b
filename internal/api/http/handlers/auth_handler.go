package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/michaeljohnaustria/my-garden/internal/api/dto"
	"github.com/michaeljohnaustria/my-garden/internal/service"
	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// An empty body reads as {} and falls through to the missing-field checks.
	var req dto.LoginRequest
	if body := c.Body(); len(bytes.TrimSpace(body)) > 0 {
		if err := c.App().Config().JSONDecoder(body, &req); err != nil {
			return apperrors.NewValidationError(msgInvalidJSON, nil)
		}
	}
	if isFalsy(req.Username) {
		return apperrors.NewValidationError("username is required", nil)
	}
	if isFalsy(req.Password) {
		return apperrors.NewValidationError("password is required", nil)
	}
	// Non-string credentials cannot match and fall through to the generic failure.
	username, _ := req.Username.(string)
	password, _ := req.Password.(string)

	token, _, err := h.auth.Login(c.UserContext(), username, password)
	if err != nil {
		return err
	}
	return c.JSON(dto.Token(token))
}
