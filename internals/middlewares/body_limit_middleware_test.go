package middlewares

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(JSONBodyLimit(16))
	app.Post("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	big := bytes.Repeat([]byte("x"), 32)
	cases := map[string]struct {
		ct   string
		body []byte
		code int
	}{
		"small json":      {fiber.MIMEApplicationJSON, []byte(`{}`), fiber.StatusOK},
		"large json":      {fiber.MIMEApplicationJSON, big, fiber.StatusRequestEntityTooLarge},
		"large form":      {fiber.MIMEApplicationForm, big, fiber.StatusRequestEntityTooLarge},
		"large multipart": {fiber.MIMEMultipartForm + "; boundary=b", big, fiber.StatusOK},
		"no content type": {"", big, fiber.StatusRequestEntityTooLarge},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", bytes.NewReader(tc.body))
			if tc.ct != "" {
				req.Header.Set(fiber.HeaderContentType, tc.ct)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
