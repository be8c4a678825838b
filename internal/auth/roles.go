package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	apperrors "github.com/michaeljohnaustria/my-garden/pkg/util"
)

// RequireRole lets the request through only when the authenticated role is
// one of allowed. It must be chained after AuthMiddleware.Handle; a request
// without claims is a wiring mistake and is refused.
func RequireRole(allowed ...string) fiber.Handler {
	allowed = lo.Uniq(allowed)

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromCtx(c)
		if !ok {
			return apperrors.NewForbidden("Access denied: no authenticated user")
		}
		if !lo.Contains(allowed, claims.Role) {
			return apperrors.NewForbidden(fmt.Sprintf("Access denied for role '%s'", claims.Role))
		}
		return c.Next()
	}
}
