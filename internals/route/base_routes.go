package routes

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	database "btec_backend/internals/databases"
	"btec_backend/internals/helpers/blob"
)

func BaseRoutes(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(d.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"ok":             httpStatus == fiber.StatusOK,
			"status":         serverStatus,
			"database":       dbStatus,
			"driver":         d.Config.Database.Driver,
			"sessions":       d.Sessions.Len(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	// uploaded documents, addressed by the url stored with each task doc
	app.Static(blob.DefaultURLPrefix, d.Blob.Root(), fiber.Static{
		ByteRange: true,
		MaxAge:    3600,
	})
}

// FrontendRoutes serves the single-page front-end and falls back to its
// index.html for any other GET.
func FrontendRoutes(app *fiber.App, d Deps) {
	dir := d.Config.PublicDir
	app.Static("/", dir, fiber.Static{Compress: true})

	index := filepath.Join(dir, "index.html")
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile(index)
	})
}
