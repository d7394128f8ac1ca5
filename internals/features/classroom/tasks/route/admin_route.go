// file: internals/features/classroom/tasks/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/tasks/controller"
	"btec_backend/internals/features/classroom/tasks/service"
	"btec_backend/internals/helpers/blob"
)

func TaskAdminRoutes(admin fiber.Router, gate fiber.Handler, db *gorm.DB, b blob.BlobService, log *zap.Logger) {
	ctl := controller.NewTaskController(service.NewTaskService(db, b, log))

	g := admin.Group("/tasks", gate)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
