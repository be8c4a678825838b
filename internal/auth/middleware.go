package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

const bearerPrefix = "bearer "

// Messages returned by the authentication gate.
const (
	MsgTokenMissing = "Token is missing!"
	MsgTokenInvalid = "Token is invalid!"
	MsgTokenExpired = "Token has expired!"
	MsgVerifyFailed = "An error occurred while verifying the token"
)

// TokenVerifier is the slice of TokenManager the gate depends on.
type TokenVerifier interface {
	ParseToken(tokenStr string) (*Claims, error)
}

// AuthMiddleware validates bearer tokens and attaches their claims to the request.
type AuthMiddleware struct {
	tokens TokenVerifier
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized(MsgTokenMissing)
	}
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return apperrors.NewUnauthorized(MsgTokenMissing)
	}
	tokenStr := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if tokenStr == "" {
		return apperrors.NewUnauthorized(MsgTokenMissing)
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	switch {
	case err == nil:
	case errors.Is(err, ErrTokenExpired):
		return apperrors.NewUnauthorized(MsgTokenExpired)
	case errors.Is(err, ErrTokenInvalid):
		return apperrors.NewUnauthorized(MsgTokenInvalid)
	default:
		m.logger.Error("token verification failed", zap.Error(err))
		return &apperrors.DomainError{
			Code:       "INTERNAL_ERROR",
			Message:    MsgVerifyFailed,
			HTTPStatus: fiber.StatusInternalServerError,
			Err:        err,
		}
	}

	attachClaims(c, claims)
	return c.Next()
}
