package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	sessionRoute "btec_backend/internals/features/admin/sessions/route"
	sessionService "btec_backend/internals/features/admin/sessions/service"
	generationRoute "btec_backend/internals/features/classroom/generations/route"
	taskDocRoute "btec_backend/internals/features/classroom/task_docs/route"
	taskRoute "btec_backend/internals/features/classroom/tasks/route"
	lessonRoute "btec_backend/internals/features/lessons/python_lessons/route"
	"btec_backend/internals/helpers/blob"
	authMiddleware "btec_backend/internals/middlewares/auth"
)

type AdminDeps struct {
	DB           *gorm.DB
	Sessions     *sessionService.Registry
	Blob         blob.BlobService
	Log          *zap.Logger
	LoginLimiter fiber.Handler // nil = unlimited
}

// AdminRoutes mounts /api/admin. Only login is reachable without a token.
func AdminRoutes(admin fiber.Router, d AdminDeps) {
	gate := authMiddleware.RequireAdmin(d.Sessions)

	sessionRoute.SessionRoutes(admin, d.Sessions, d.Log, gate, d.LoginLimiter)

	generationRoute.GenerationAdminRoutes(admin, gate, d.DB, d.Log)
	taskRoute.TaskAdminRoutes(admin, gate, d.DB, d.Blob, d.Log)
	taskDocRoute.TaskDocAdminRoutes(admin, gate, d.DB, d.Blob, d.Log)
	lessonRoute.PythonLessonAdminRoutes(admin, gate, d.DB, d.Log)
}
