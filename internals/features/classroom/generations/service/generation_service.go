// file: internals/features/classroom/generations/service/generation_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/generations/dto"
	"btec_backend/internals/features/classroom/generations/model"
	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	taskModel "btec_backend/internals/features/classroom/tasks/model"
	helper "btec_backend/internals/helpers"
)

type GenerationService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewGenerationService(db *gorm.DB, log *zap.Logger) *GenerationService {
	return &GenerationService{DB: db, Log: log}
}

// Create inserts a generation whose name (case-folded) is not taken yet.
func (s *GenerationService) Create(ctx context.Context, req dto.CreateGenerationRequest) (model.GenerationModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.GenerationModel{}, err
	}

	m := req.ToModel(helper.NewID(helper.PrefixGeneration))
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.GenerationModel{}).
			Where("name_key = ?", m.NameKey).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.BadRequest(dto.MsgNameDuplicate)
		}
		return tx.Create(&m).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a race against a concurrent insert of the same name
		return model.GenerationModel{}, helper.BadRequest(dto.MsgNameDuplicate)
	}
	if err != nil {
		return model.GenerationModel{}, err
	}
	return m, nil
}

// Delete removes the generation with its tasks and their documents in one
// transaction. Uploaded files of those documents stay on disk. Unknown ids
// are a no-op.
func (s *GenerationService) Delete(ctx context.Context, id string) error {
	var removedDocs, removedTasks int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&taskModel.TaskModel{}).
			Where("gen_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			res := tx.Where("task_id IN ?", taskIDs).Delete(&taskDocModel.TaskDocModel{})
			if res.Error != nil {
				return res.Error
			}
			removedDocs = res.RowsAffected

			res = tx.Where("gen_id = ?", id).Delete(&taskModel.TaskModel{})
			if res.Error != nil {
				return res.Error
			}
			removedTasks = res.RowsAffected
		}

		return tx.Where("id = ?", id).Delete(&model.GenerationModel{}).Error
	})
	if err != nil {
		return err
	}
	if removedDocs > 0 {
		s.Log.Info("generation deleted, document files left on disk",
			zap.String("generation_id", id),
			zap.Int64("tasks", removedTasks),
			zap.Int64("documents", removedDocs),
		)
	}
	return nil
}

// List returns every generation, unordered.
func (s *GenerationService) List(ctx context.Context) ([]model.GenerationModel, error) {
	rows := make([]model.GenerationModel, 0)
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
