package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "auth_claims"

type claimsContextKey struct{}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return claims, ok && claims != nil
}

// ClaimsFromCtx retrieves the claims the authentication gate attached to this request.
func ClaimsFromCtx(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok && claims != nil
}

func attachClaims(c *fiber.Ctx, claims *Claims) {
	c.Locals(claimsKey, claims)
	c.SetUserContext(WithClaims(c.UserContext(), claims))
}
