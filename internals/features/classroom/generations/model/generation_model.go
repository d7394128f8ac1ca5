// file: internals/features/classroom/generations/model/generation_model.go
package model

// GenerationModel is a cohort. Names are unique ignoring case; the folded
// form lives in NameKey so the unique index can enforce it on any driver.
type GenerationModel struct {
	ID      string `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:text;not null" json:"name"`
	NameKey string `gorm:"column:name_key;type:text;not null;uniqueIndex:uq_generations_name_key" json:"-"`
	Descr   string `gorm:"column:descr;type:text;not null;default:''" json:"descr"`
}

func (GenerationModel) TableName() string {
	return "generations"
}
