// file: internals/features/lessons/python_lessons/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/lessons/python_lessons/controller"
	"btec_backend/internals/features/lessons/python_lessons/service"
)

func PythonLessonAdminRoutes(admin fiber.Router, gate fiber.Handler, db *gorm.DB, log *zap.Logger) {
	ctl := controller.NewPythonLessonController(service.NewPythonLessonService(db, log))

	g := admin.Group("/pythonlessons", gate)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
