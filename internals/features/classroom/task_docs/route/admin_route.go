// file: internals/features/classroom/task_docs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/task_docs/controller"
	"btec_backend/internals/features/classroom/task_docs/service"
	"btec_backend/internals/helpers/blob"
)

func TaskDocAdminRoutes(admin fiber.Router, gate fiber.Handler, db *gorm.DB, b blob.BlobService, log *zap.Logger) {
	ctl := controller.NewTaskDocController(service.NewTaskDocService(db, b, log))

	g := admin.Group("/taskdocs", gate)
	g.Post("/upload", ctl.Upload)
	g.Delete("/:id", ctl.Delete)
}
