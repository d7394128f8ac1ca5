// file: internals/route/app.go
package routes

import (
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/configs"
	sessionService "btec_backend/internals/features/admin/sessions/service"
	helper "btec_backend/internals/helpers"
	"btec_backend/internals/helpers/blob"
	"btec_backend/internals/middlewares"
	accessLog "btec_backend/internals/middlewares/logger"
)

// Deps is everything the HTTP layer needs, built once in main.
type Deps struct {
	DB       *gorm.DB
	Sessions *sessionService.Registry
	Blob     *blob.LocalBlobService
	Log      *zap.Logger
	Config   *configs.AppConfig
}

// NewApp builds the fiber app with middlewares and every route mounted.
func NewApp(d Deps) *fiber.App {
	bodyLimit := d.Config.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}
	// fiber's own limit guards uploads only; JSON bodies get JSONBodyLimit
	requestLimit := math.MaxInt
	if up := d.Config.UploadLimitMB; up > 0 {
		requestLimit = max(up, bodyLimit) * 1024 * 1024
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             requestLimit,
		ErrorHandler:          helper.ErrorHandler(d.Log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(d.Log))
	app.Use(middlewares.RequestID(d.Log))
	if !d.Config.Log.IsProduction() {
		app.Use(accessLog.LoggerMiddleware(nil))
	}
	app.Use(middlewares.CorsMiddleware(d.Config.CORSAllowOrigins))
	app.Use(middlewares.JSONBodyLimit(bodyLimit * 1024 * 1024))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	SetupRoutes(app, d)
	return app
}
