// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the admin gate.
const (
	LocAdminToken    = "admin_token"
	LocAdminUsername = "admin_username"
)

// GetBearerToken returns the token from "Authorization: Bearer <token>", or ""
// when the header is missing or malformed. The scheme is matched
// case-insensitively and surrounding quotes are stripped.
func GetBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return ""
	}
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
}

// GetAdminToken returns the token the admin gate already verified.
func GetAdminToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocAdminToken).(string); ok {
		return v
	}
	return ""
}
