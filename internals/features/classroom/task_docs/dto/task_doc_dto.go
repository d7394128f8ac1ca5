// file: internals/features/classroom/task_docs/dto/task_doc_dto.go
package dto

import (
	"mime/multipart"
	"strings"

	"btec_backend/internals/features/classroom/task_docs/model"
	helper "btec_backend/internals/helpers"
	"btec_backend/internals/helpers/blob"
)

const (
	MsgTaskIDRequired      = "taskId مطلوب"
	MsgDisplayNameRequired = "اسم المستند مطلوب"
	MsgFileRequired        = "اختر ملف"
)

// UploadTaskDocRequest is the multipart form of an upload. Validation runs in
// field order: taskId, displayName, file.
type UploadTaskDocRequest struct {
	TaskID      string                `form:"taskId" validate:"notblank"`
	DisplayName string                `form:"displayName" validate:"notblank"`
	File        *multipart.FileHeader `form:"-" validate:"required"`
}

func (r *UploadTaskDocRequest) Normalize() {
	r.TaskID = strings.TrimSpace(r.TaskID)
	r.DisplayName = strings.TrimSpace(r.DisplayName)
}

func (r *UploadTaskDocRequest) Validate() error {
	return helper.ValidateStruct(r, map[string]string{
		"TaskID":      MsgTaskIDRequired,
		"DisplayName": MsgDisplayNameRequired,
		"File":        MsgFileRequired,
	})
}

func (r UploadTaskDocRequest) ToModel(id string, f blob.StoredFile, createdAt int64) model.TaskDocModel {
	return model.TaskDocModel{
		ID:          id,
		TaskID:      r.TaskID,
		DisplayName: r.DisplayName,
		Filename:    f.OriginalName,
		Mime:        f.ContentType,
		Size:        f.Size,
		URL:         f.PublicURL,
		CreatedAt:   createdAt,
	}
}
