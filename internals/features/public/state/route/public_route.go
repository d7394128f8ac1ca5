// file: internals/features/public/state/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/public/state/controller"
	"btec_backend/internals/features/public/state/service"
)

func StatePublicRoutes(public fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := controller.NewStateController(service.NewStateService(db, log))
	public.Get("/state", ctl.Get)
}
