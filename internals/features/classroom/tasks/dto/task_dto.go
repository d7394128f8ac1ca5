// file: internals/features/classroom/tasks/dto/task_dto.go
package dto

import (
	"strings"

	"btec_backend/internals/features/classroom/tasks/model"
	helper "btec_backend/internals/helpers"
)

const (
	MsgGenIDRequired = "genId مطلوب"
	MsgTitleRequired = "عنوان المهمة مطلوب"
)

// Field order decides which message wins when several are missing.
type CreateTaskRequest struct {
	GenID string `json:"genId" form:"genId" validate:"notblank"`
	Title string `json:"title" form:"title" validate:"notblank"`
	Descr string `json:"descr" form:"descr"`
}

func (r *CreateTaskRequest) Normalize() {
	r.GenID = strings.TrimSpace(r.GenID)
	r.Title = strings.TrimSpace(r.Title)
	r.Descr = strings.TrimSpace(r.Descr)
}

func (r *CreateTaskRequest) Validate() error {
	return helper.ValidateStruct(r, map[string]string{
		"GenID": MsgGenIDRequired,
		"Title": MsgTitleRequired,
	})
}

func (r CreateTaskRequest) ToModel(id string, createdAt int64) model.TaskModel {
	return model.TaskModel{
		ID:        id,
		GenID:     r.GenID,
		Title:     r.Title,
		Descr:     r.Descr,
		CreatedAt: createdAt,
	}
}
