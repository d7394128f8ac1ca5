// file: internals/features/lessons/python_lessons/controller/python_lesson_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/lessons/python_lessons/dto"
	"btec_backend/internals/features/lessons/python_lessons/service"
	helper "btec_backend/internals/helpers"
)

type PythonLessonController struct {
	Svc *service.PythonLessonService
}

func NewPythonLessonController(svc *service.PythonLessonService) *PythonLessonController {
	return &PythonLessonController{Svc: svc}
}

// POST /api/admin/pythonlessons
func (ctl *PythonLessonController) Create(c *fiber.Ctx) error {
	var req dto.CreatePythonLessonRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{"id": m.ID})
}

// DELETE /api/admin/pythonlessons/:id
func (ctl *PythonLessonController) Delete(c *fiber.Ctx) error {
	if err := ctl.Svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonOK(c, nil)
}
