package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	stateRoute "btec_backend/internals/features/public/state/route"
)

// PublicRoutes mounts /api/public (no auth).
func PublicRoutes(public fiber.Router, db *gorm.DB, log *zap.Logger) {
	stateRoute.StatePublicRoutes(public, db, log)
}
