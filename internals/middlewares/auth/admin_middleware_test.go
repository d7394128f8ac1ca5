package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btec_backend/internals/features/admin/sessions/service"
	helper "btec_backend/internals/helpers"
	"btec_backend/internals/middlewares/auth"
)

func TestRequireAdmin(t *testing.T) {
	reg := service.NewRegistry("admin", "pw")
	token, _, err := reg.Login("admin", "pw")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		return helper.FromFiberError(c, err)
	}})
	reached := 0
	app.Get("/x", auth.RequireAdmin(reg), func(c *fiber.Ctx) error {
		reached++
		assert.Equal(t, token, helper.GetAdminToken(c))
		assert.Equal(t, "admin", c.Locals(helper.LocAdminUsername))
		return c.SendStatus(http.StatusNoContent)
	})

	cases := map[string]int{
		"":                         http.StatusUnauthorized,
		"Bearer":                   http.StatusUnauthorized,
		"Basic " + token:           http.StatusUnauthorized,
		"Bearer tok_unknown":       http.StatusUnauthorized,
		"Bearer " + token:          http.StatusNoContent,
		"Bearer \"" + token + "\"": http.StatusNoContent,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, header)
	}
	assert.Equal(t, 2, reached)
}
