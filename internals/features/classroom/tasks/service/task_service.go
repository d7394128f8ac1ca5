// file: internals/features/classroom/tasks/service/task_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	"btec_backend/internals/features/classroom/tasks/dto"
	"btec_backend/internals/features/classroom/tasks/model"
	helper "btec_backend/internals/helpers"
	"btec_backend/internals/helpers/blob"
)

type TaskService struct {
	DB   *gorm.DB
	Blob blob.BlobService
	Log  *zap.Logger
}

func NewTaskService(db *gorm.DB, b blob.BlobService, log *zap.Logger) *TaskService {
	return &TaskService{DB: db, Blob: b, Log: log}
}

// Create does not check that GenID names an existing generation.
func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (model.TaskModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.TaskModel{}, err
	}

	m := req.ToModel(helper.NewID(helper.PrefixTask), helper.NowMillis())
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return model.TaskModel{}, err
	}
	return m, nil
}

// Delete removes the task and its documents atomically, then removes the
// documents' files. File removal is best-effort. Unknown ids are a no-op.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	var urls []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&taskDocModel.TaskDocModel{}).
			Where("task_id = ?", id).
			Pluck("url", &urls).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&taskDocModel.TaskDocModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.TaskModel{}).Error
	})
	if err != nil {
		return err
	}

	for _, u := range urls {
		if err := s.Blob.DeleteByPublicURL(ctx, u); err != nil {
			s.Log.Warn("task document file not removed", zap.String("task_id", id), zap.String("url", u), zap.Error(err))
		}
	}
	return nil
}

// List returns every task, newest first.
func (s *TaskService) List(ctx context.Context) ([]model.TaskModel, error) {
	rows := make([]model.TaskModel, 0)
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
