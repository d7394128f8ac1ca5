// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"btec_backend/internals/middlewares"
	routeDetails "btec_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	d.Log.Info("setting up base routes")
	BaseRoutes(app, d)

	api := app.Group("/api")

	d.Log.Info("mounting public routes")
	routeDetails.PublicRoutes(api.Group("/public"), d.DB, d.Log)

	d.Log.Info("mounting admin routes", zap.Int("login_rate_limit", d.Config.LoginRateLimit))
	routeDetails.AdminRoutes(api.Group("/admin"), routeDetails.AdminDeps{
		DB:           d.DB,
		Sessions:     d.Sessions,
		Blob:         d.Blob,
		Log:          d.Log,
		LoginLimiter: middlewares.LoginRateLimiter(d.Config.LoginRateLimit),
	})

	// must stay last: catches every GET nothing else matched
	FrontendRoutes(app, d)
}
