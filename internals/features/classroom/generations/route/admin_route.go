// file: internals/features/classroom/generations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/generations/controller"
	"btec_backend/internals/features/classroom/generations/service"
)

// GenerationAdminRoutes mounts the write endpoints behind gate.
func GenerationAdminRoutes(admin fiber.Router, gate fiber.Handler, db *gorm.DB, log *zap.Logger) {
	ctl := controller.NewGenerationController(service.NewGenerationService(db, log))

	g := admin.Group("/generations", gate)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
