// file: internals/features/public/state/service/state_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	genModel "btec_backend/internals/features/classroom/generations/model"
	genService "btec_backend/internals/features/classroom/generations/service"
	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	taskDocService "btec_backend/internals/features/classroom/task_docs/service"
	taskModel "btec_backend/internals/features/classroom/tasks/model"
	taskService "btec_backend/internals/features/classroom/tasks/service"
	lessonModel "btec_backend/internals/features/lessons/python_lessons/model"
	lessonService "btec_backend/internals/features/lessons/python_lessons/service"
	"btec_backend/internals/features/public/state/dto"
)

// Lister is the read side of a feature service. The public snapshot only
// ever lists, so services built here carry no blob store.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// StateService reads the four lists one after another. They are not taken
// from a single snapshot.
type StateService struct {
	Generations Lister[genModel.GenerationModel]
	Tasks       Lister[taskModel.TaskModel]
	TaskDocs    Lister[taskDocModel.TaskDocModel]
	Lessons     Lister[lessonModel.PythonLessonModel]
}

func NewStateService(db *gorm.DB, log *zap.Logger) *StateService {
	return &StateService{
		Generations: genService.NewGenerationService(db, log),
		Tasks:       taskService.NewTaskService(db, nil, log),
		TaskDocs:    taskDocService.NewTaskDocService(db, nil, log),
		Lessons:     lessonService.NewPythonLessonService(db, log),
	}
}

func (s *StateService) Snapshot(ctx context.Context) (dto.PublicState, error) {
	var (
		out dto.PublicState
		err error
	)
	if out.Generations, err = s.Generations.List(ctx); err != nil {
		return dto.PublicState{}, err
	}
	if out.Tasks, err = s.Tasks.List(ctx); err != nil {
		return dto.PublicState{}, err
	}
	if out.TaskDocs, err = s.TaskDocs.List(ctx); err != nil {
		return dto.PublicState{}, err
	}
	if out.PythonLessons, err = s.Lessons.List(ctx); err != nil {
		return dto.PublicState{}, err
	}
	return out, nil
}
