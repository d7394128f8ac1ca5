// file: internals/features/lessons/python_lessons/model/python_lesson_model.go
package model

import "gorm.io/datatypes"

// Slide is stored inside the lesson's slides_json column, never as its own row.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	Code    string   `json:"code"`
}

type PythonLessonModel struct {
	ID        string                      `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Title     string                      `gorm:"column:title;type:text;not null" json:"title"`
	CreatedAt int64                       `gorm:"column:created_at;not null;autoCreateTime:false;index:idx_python_lessons_created_at" json:"createdAt"`
	Slides    datatypes.JSONType[[]Slide] `gorm:"column:slides_json;type:text;not null" json:"slides"`
}

func (PythonLessonModel) TableName() string {
	return "python_lessons"
}
