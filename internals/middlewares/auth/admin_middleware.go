// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/admin/sessions/service"
	helper "btec_backend/internals/helpers"
)

// Authorizer resolves a bearer token to the admin session behind it.
type Authorizer interface {
	Authorize(token string) (service.Session, error)
}

// RequireAdmin rejects the request with 401 unless it carries a token the
// registry issued. It runs before any body parsing or validation.
func RequireAdmin(authz Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := helper.GetBearerToken(c)
		s, err := authz.Authorize(token)
		if err != nil {
			return err
		}
		c.Locals(helper.LocAdminToken, token)
		c.Locals(helper.LocAdminUsername, s.Username)
		return c.Next()
	}
}
