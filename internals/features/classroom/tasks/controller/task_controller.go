// file: internals/features/classroom/tasks/controller/task_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/classroom/tasks/dto"
	"btec_backend/internals/features/classroom/tasks/service"
	helper "btec_backend/internals/helpers"
)

type TaskController struct {
	Svc *service.TaskService
}

func NewTaskController(svc *service.TaskService) *TaskController {
	return &TaskController{Svc: svc}
}

// POST /api/admin/tasks
func (ctl *TaskController) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{"id": m.ID})
}

// DELETE /api/admin/tasks/:id
func (ctl *TaskController) Delete(c *fiber.Ctx) error {
	if err := ctl.Svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonOK(c, nil)
}
