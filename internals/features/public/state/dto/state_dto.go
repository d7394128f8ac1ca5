// file: internals/features/public/state/dto/state_dto.go
package dto

import (
	genModel "btec_backend/internals/features/classroom/generations/model"
	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	taskModel "btec_backend/internals/features/classroom/tasks/model"
	lessonModel "btec_backend/internals/features/lessons/python_lessons/model"
)

// PublicState is the whole read model the front-end renders from.
type PublicState struct {
	Generations   []genModel.GenerationModel      `json:"generations"`
	Tasks         []taskModel.TaskModel           `json:"tasks"`
	TaskDocs      []taskDocModel.TaskDocModel     `json:"taskDocs"`
	PythonLessons []lessonModel.PythonLessonModel `json:"pythonLessons"`
}
