// file: internals/features/lessons/python_lessons/service/python_lesson_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/lessons/python_lessons/dto"
	"btec_backend/internals/features/lessons/python_lessons/model"
	helper "btec_backend/internals/helpers"
)

type PythonLessonService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewPythonLessonService(db *gorm.DB, log *zap.Logger) *PythonLessonService {
	return &PythonLessonService{DB: db, Log: log}
}

func (s *PythonLessonService) Create(ctx context.Context, req dto.CreatePythonLessonRequest) (model.PythonLessonModel, error) {
	req.Normalize()
	slides, err := req.Validate()
	if err != nil {
		return model.PythonLessonModel{}, err
	}

	m := req.ToModel(helper.NewID(helper.PrefixPythonLesson), slides, helper.NowMillis())
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return model.PythonLessonModel{}, err
	}
	s.Log.Debug("python lesson created", zap.String("id", m.ID), zap.Int("slides", len(slides)))
	return m, nil
}

// Delete is a no-op for unknown ids.
func (s *PythonLessonService) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.PythonLessonModel{}).Error
}

// List returns every lesson with decoded slides, newest first.
func (s *PythonLessonService) List(ctx context.Context) ([]model.PythonLessonModel, error) {
	rows := make([]model.PythonLessonModel, 0)
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
