// file: internals/features/classroom/generations/dto/generation_dto.go
package dto

import (
	"strings"

	"btec_backend/internals/features/classroom/generations/model"
	helper "btec_backend/internals/helpers"
)

const (
	MsgNameRequired  = "اسم الجيل مطلوب"
	MsgNameDuplicate = "اسم الجيل موجود مسبقًا"
)

type CreateGenerationRequest struct {
	Name  string `json:"name" form:"name" validate:"notblank"`
	Descr string `json:"descr" form:"descr"`
}

func (r *CreateGenerationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Descr = strings.TrimSpace(r.Descr)
}

func (r *CreateGenerationRequest) Validate() error {
	return helper.ValidateStruct(r, map[string]string{"Name": MsgNameRequired})
}

// ToModel assumes Normalize has run.
func (r CreateGenerationRequest) ToModel(id string) model.GenerationModel {
	return model.GenerationModel{
		ID:      id,
		Name:    r.Name,
		NameKey: helper.NameKey(r.Name),
		Descr:   r.Descr,
	}
}
