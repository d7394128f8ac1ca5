// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelope: every body carries "ok"
=================================*/

// JsonOK writes {"ok": true, ...fields} with status 200.
func JsonOK(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		if k == "ok" {
			continue
		}
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonData writes {"ok": true, "data": data}.
func JsonData(c *fiber.Ctx, data any) error {
	return JsonOK(c, fiber.Map{"data": data})
}

// JsonError writes {"ok": false, "msg": message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = statusMessage(status)
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":  false,
		"msg": message,
	})
}

func statusMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusNotFound:
		return "not found"
	case fiber.StatusRequestEntityTooLarge:
		return "request body too large"
	case fiber.StatusTooManyRequests:
		return "too many requests"
	default:
		if status >= 500 {
			return "internal server error"
		}
		return "error"
	}
}
