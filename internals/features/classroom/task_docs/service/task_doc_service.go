// file: internals/features/classroom/task_docs/service/task_doc_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"btec_backend/internals/features/classroom/task_docs/dto"
	"btec_backend/internals/features/classroom/task_docs/model"
	helper "btec_backend/internals/helpers"
	"btec_backend/internals/helpers/blob"
)

type TaskDocService struct {
	DB   *gorm.DB
	Blob blob.BlobService
	Log  *zap.Logger
}

func NewTaskDocService(db *gorm.DB, b blob.BlobService, log *zap.Logger) *TaskDocService {
	return &TaskDocService{DB: db, Blob: b, Log: log}
}

// Upload validates every field before touching the disk, stores the file,
// then records its metadata. The task is not required to exist.
func (s *TaskDocService) Upload(ctx context.Context, req dto.UploadTaskDocRequest) (model.TaskDocModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.TaskDocModel{}, err
	}

	stored, err := s.Blob.Save(ctx, req.File)
	if err != nil {
		return model.TaskDocModel{}, err
	}

	m := req.ToModel(helper.NewID(helper.PrefixTaskDoc), stored, helper.NowMillis())
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if derr := s.Blob.DeleteByPublicURL(ctx, stored.PublicURL); derr != nil {
			s.Log.Warn("orphaned upload", zap.String("url", stored.PublicURL), zap.Error(derr))
		}
		return model.TaskDocModel{}, err
	}

	s.Log.Info("task document uploaded",
		zap.String("id", m.ID),
		zap.String("task_id", m.TaskID),
		zap.String("url", m.URL),
		zap.Int64("size", m.Size),
	)
	return m, nil
}

// Delete removes the file (best-effort, a missing file is fine) and then the
// row. Unknown ids are a no-op.
func (s *TaskDocService) Delete(ctx context.Context, id string) error {
	db := s.DB.WithContext(ctx)

	var row model.TaskDocModel
	err := db.Select("id", "url").Where("id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	}

	if row.URL != "" {
		if err := s.Blob.DeleteByPublicURL(ctx, row.URL); err != nil {
			s.Log.Warn("task document file not removed", zap.String("id", id), zap.String("url", row.URL), zap.Error(err))
		}
	}
	return db.Where("id = ?", id).Delete(&model.TaskDocModel{}).Error
}

// List returns every document, newest first.
func (s *TaskDocService) List(ctx context.Context) ([]model.TaskDocModel, error) {
	rows := make([]model.TaskDocModel, 0)
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
