package logger

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware untuk mencatat semua request (access log). out nil = stdout.
func LoggerMiddleware(out io.Writer) fiber.Handler {
	cfg := logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}
	if out != nil {
		cfg.Output = out
	}
	return logger.New(cfg)
}
