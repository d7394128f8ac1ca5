// file: internals/features/admin/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"btec_backend/internals/features/admin/sessions/controller"
	"btec_backend/internals/features/admin/sessions/service"
)

// SessionRoutes mounts login (public, optionally rate limited) and logout
// (behind gate) on the admin group.
func SessionRoutes(admin fiber.Router, reg *service.Registry, log *zap.Logger, gate fiber.Handler, loginLimiter fiber.Handler) {
	ctl := controller.NewSessionController(reg, log)

	if loginLimiter != nil {
		admin.Post("/login", loginLimiter, ctl.Login)
	} else {
		admin.Post("/login", ctl.Login)
	}
	admin.Post("/logout", gate, ctl.Logout)
}
