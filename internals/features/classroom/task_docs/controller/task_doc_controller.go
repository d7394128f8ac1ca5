// file: internals/features/classroom/task_docs/controller/task_doc_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"btec_backend/internals/features/classroom/task_docs/dto"
	"btec_backend/internals/features/classroom/task_docs/service"
	helper "btec_backend/internals/helpers"
)

type TaskDocController struct {
	Svc *service.TaskDocService
}

func NewTaskDocController(svc *service.TaskDocService) *TaskDocController {
	return &TaskDocController{Svc: svc}
}

// POST /api/admin/taskdocs/upload (multipart: file, taskId, displayName)
func (ctl *TaskDocController) Upload(c *fiber.Ctx) error {
	req := dto.UploadTaskDocRequest{
		TaskID:      c.FormValue("taskId"),
		DisplayName: c.FormValue("displayName"),
	}
	if fh, err := c.FormFile("file"); err == nil {
		req.File = fh
	}

	m, err := ctl.Svc.Upload(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, fiber.Map{"id": m.ID, "url": m.URL})
}

// DELETE /api/admin/taskdocs/:id
func (ctl *TaskDocController) Delete(c *fiber.Ctx) error {
	if err := ctl.Svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return helper.JsonOK(c, nil)
}
