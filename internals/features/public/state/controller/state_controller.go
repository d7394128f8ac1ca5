// file: internals/features/public/state/controller/state_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/public/state/service"
	helper "btec_backend/internals/helpers"
)

type StateController struct {
	Svc *service.StateService
}

func NewStateController(svc *service.StateService) *StateController {
	return &StateController{Svc: svc}
}

// GET /api/public/state
func (ctl *StateController) Get(c *fiber.Ctx) error {
	st, err := ctl.Svc.Snapshot(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return helper.JsonData(c, st)
}
