package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/michaeljohnaustria/my-garden/internal/auth"
	"github.com/michaeljohnaustria/my-garden/internal/config"
	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

// TokenIssuer is the part of auth.TokenManager the login flow needs.
type TokenIssuer interface {
	GenerateToken(username, role string) (string, *time.Time, error)
}

// AuthService checks the single configured credential pair and issues tokens.
type AuthService struct {
	tokens       TokenIssuer
	username     string
	password     string
	passwordHash string
	role         string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, tokens TokenIssuer) *AuthService {
	return &AuthService{
		tokens:       tokens,
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		role:         cfg.AdminRole,
	}
}

// Login returns a signed token when username and password match the configured
// pair. A configured bcrypt hash takes precedence over the plaintext password.
// Both halves are always evaluated so timing does not reveal which one failed.
func (s *AuthService) Login(_ context.Context, username, password string) (string, *time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if s.passwordHash != "" {
		passOK = auth.PasswordMatches(s.passwordHash, password)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	if !userOK || !passOK {
		return "", nil, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokens.GenerateToken(username, s.role)
	if err != nil {
		return "", nil, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}
