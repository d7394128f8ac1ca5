// file: internals/features/admin/sessions/controller/session_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"btec_backend/internals/features/admin/sessions/dto"
	"btec_backend/internals/features/admin/sessions/service"
	helper "btec_backend/internals/helpers"
)

type SessionController struct {
	Sessions *service.Registry
	Log      *zap.Logger
}

func NewSessionController(reg *service.Registry, log *zap.Logger) *SessionController {
	return &SessionController{Sessions: reg, Log: log}
}

// POST /api/admin/login
func (ctl *SessionController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	// a malformed body is just wrong credentials
	_ = c.BodyParser(&req)

	token, s, err := ctl.Sessions.Login(req.Username, req.Password)
	if err != nil {
		ctl.Log.Warn("admin login rejected", zap.String("ip", c.IP()))
		return err
	}
	ctl.Log.Info("admin logged in", zap.String("username", s.Username), zap.Int("sessions", ctl.Sessions.Len()))
	return c.JSON(dto.LoginResponse{OK: true, Token: token, Username: s.Username})
}

// POST /api/admin/logout (behind the admin gate)
func (ctl *SessionController) Logout(c *fiber.Ctx) error {
	ctl.Sessions.Logout(helper.GetAdminToken(c))
	return helper.JsonOK(c, nil)
}
