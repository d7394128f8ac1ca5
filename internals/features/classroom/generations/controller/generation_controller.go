// file: internals/features/classroom/generations/controller/generation_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/classroom/generations/dto"
	"btec_backend/internals/features/classroom/generations/service"
	helper "btec_backend/internals/helpers"
)

type GenerationController struct {
	Svc *service.GenerationService
}

func NewGenerationController(svc *service.GenerationService) *GenerationController {
	return &GenerationController{Svc: svc}
}

// POST /api/admin/generations
func (ctl *GenerationController) Create(c *fiber.Ctx) error {
	var req dto.CreateGenerationRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{"id": m.ID})
}

// DELETE /api/admin/generations/:id
func (ctl *GenerationController) Delete(c *fiber.Ctx) error {
	if err := ctl.Svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonOK(c, nil)
}
