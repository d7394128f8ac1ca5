package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "btec_backend/internals/helpers"
)

// MsgBodyTooLarge dikirim saat body JSON/form melebihi batas.
const MsgBodyTooLarge = "حجم الطلب كبير جدًا"

// JSONBodyLimit membatasi body non-multipart (JSON, form) ke maxBytes.
// Upload multipart dilewati; batasnya diatur fiber.Config.BodyLimit.
func JSONBodyLimit(maxBytes int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if maxBytes <= 0 || isMultipart(c) {
			return c.Next()
		}
		if len(c.Body()) > maxBytes {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		}
		return c.Next()
	}
}

func isMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}
