package service_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	"btec_backend/internals/features/classroom/tasks/dto"
	"btec_backend/internals/features/classroom/tasks/model"
	"btec_backend/internals/features/classroom/tasks/service"
	"btec_backend/internals/helpers/blob"
	"btec_backend/internals/helpers/testutil"
)

func requireBadRequest(t *testing.T, err error, msg string) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadRequest, fe.Code)
	assert.Equal(t, msg, fe.Message)
}

func TestCreate_Validation(t *testing.T) {
	svc := service.NewTaskService(testutil.DB(t), &blob.MockBlobService{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateTaskRequest{GenID: " ", Title: "x"})
	requireBadRequest(t, err, dto.MsgGenIDRequired)

	_, err = svc.Create(ctx, dto.CreateTaskRequest{GenID: "g_1", Title: "  "})
	requireBadRequest(t, err, dto.MsgTitleRequired)

	// genId is reported first when both are missing
	_, err = svc.Create(ctx, dto.CreateTaskRequest{})
	requireBadRequest(t, err, dto.MsgGenIDRequired)
}

func TestCreate_OrphanGenerationAllowed(t *testing.T) {
	testutil.StepClock(t)
	db := testutil.DB(t)
	svc := service.NewTaskService(db, &blob.MockBlobService{}, zap.NewNop())

	m, err := svc.Create(context.Background(), dto.CreateTaskRequest{GenID: " g_nobody ", Title: " T ", Descr: " d "})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.ID, "t_"))

	var got model.TaskModel
	require.NoError(t, db.First(&got, "id = ?", m.ID).Error)
	assert.Equal(t, "g_nobody", got.GenID)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "d", got.Descr)
	assert.Positive(t, got.CreatedAt)
}

func TestDelete_RemovesDocsAndFilesKeepsSiblings(t *testing.T) {
	db := testutil.DB(t)
	mock := &blob.MockBlobService{}
	svc := service.NewTaskService(db, mock, zap.NewNop())

	require.NoError(t, db.Create(&[]model.TaskModel{
		{ID: "t_1", GenID: "g_1", Title: "a", CreatedAt: 1},
		{ID: "t_2", GenID: "g_1", Title: "b", CreatedAt: 2},
	}).Error)
	require.NoError(t, db.Create(&[]taskDocModel.TaskDocModel{
		{ID: "doc_1", TaskID: "t_1", DisplayName: "x", Filename: "x", Mime: "m", URL: "/uploads/1_x", CreatedAt: 1},
		{ID: "doc_2", TaskID: "t_1", DisplayName: "y", Filename: "y", Mime: "m", URL: "/uploads/2_y", CreatedAt: 2},
		{ID: "doc_3", TaskID: "t_2", DisplayName: "z", Filename: "z", Mime: "m", URL: "/uploads/3_z", CreatedAt: 3},
	}).Error)

	require.NoError(t, svc.Delete(context.Background(), "t_1"))

	var taskIDs, docIDs []string
	require.NoError(t, db.Model(&model.TaskModel{}).Pluck("id", &taskIDs).Error)
	require.NoError(t, db.Model(&taskDocModel.TaskDocModel{}).Pluck("id", &docIDs).Error)
	assert.Equal(t, []string{"t_2"}, taskIDs)
	assert.Equal(t, []string{"doc_3"}, docIDs)
	assert.ElementsMatch(t, []string{"/uploads/1_x", "/uploads/2_y"}, mock.DeletedURLs())
}

func TestDelete_FileErrorsAreSwallowed(t *testing.T) {
	db := testutil.DB(t)
	mock := &blob.MockBlobService{
		DeleteByPublicURLFn: func(context.Context, string) error { return errors.New("disk on fire") },
	}
	svc := service.NewTaskService(db, mock, zap.NewNop())

	require.NoError(t, db.Create(&model.TaskModel{ID: "t_1", GenID: "g", Title: "a", CreatedAt: 1}).Error)
	require.NoError(t, db.Create(&taskDocModel.TaskDocModel{ID: "doc_1", TaskID: "t_1", DisplayName: "x", Filename: "x", Mime: "m", URL: "/uploads/1_x", CreatedAt: 1}).Error)

	require.NoError(t, svc.Delete(context.Background(), "t_1"))

	var n int64
	require.NoError(t, db.Model(&taskDocModel.TaskDocModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDelete_RemovesFilesFromDisk(t *testing.T) {
	db := testutil.DB(t)
	root := t.TempDir()
	local, err := blob.NewLocalBlobService(root)
	require.NoError(t, err)
	svc := service.NewTaskService(db, local, zap.NewNop())

	stored, err := local.Save(context.Background(), testutil.FileHeader(t, "a.txt", "text/plain", "A"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.TaskModel{ID: "t_1", GenID: "g", Title: "a", CreatedAt: 1}).Error)
	require.NoError(t, db.Create(&taskDocModel.TaskDocModel{ID: "doc_1", TaskID: "t_1", DisplayName: "x", Filename: "a.txt", Mime: "text/plain", URL: stored.PublicURL, CreatedAt: 1}).Error)

	require.NoError(t, svc.Delete(context.Background(), "t_1"))
	_, err = os.Stat(filepath.Join(root, stored.Name))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_UnknownIsNoop(t *testing.T) {
	mock := &blob.MockBlobService{}
	svc := service.NewTaskService(testutil.DB(t), mock, zap.NewNop())
	assert.NoError(t, svc.Delete(context.Background(), "t_missing"))
	assert.Empty(t, mock.DeletedURLs())
}

func TestList_NewestFirst(t *testing.T) {
	testutil.StepClock(t)
	svc := service.NewTaskService(testutil.DB(t), &blob.MockBlobService{}, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateTaskRequest{GenID: "g", Title: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, dto.CreateTaskRequest{GenID: "g", Title: "second"})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}
