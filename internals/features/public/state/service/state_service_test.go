package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	genModel "btec_backend/internals/features/classroom/generations/model"
	taskDocModel "btec_backend/internals/features/classroom/task_docs/model"
	taskModel "btec_backend/internals/features/classroom/tasks/model"
	lessonModel "btec_backend/internals/features/lessons/python_lessons/model"
	"btec_backend/internals/features/public/state/service"
	"btec_backend/internals/helpers/testutil"
)

func TestSnapshot_Empty(t *testing.T) {
	st, err := service.NewStateService(testutil.DB(t), zap.NewNop()).Snapshot(context.Background())
	require.NoError(t, err)

	// empty lists, never nil, so they encode as []
	assert.NotNil(t, st.Generations)
	assert.NotNil(t, st.Tasks)
	assert.NotNil(t, st.TaskDocs)
	assert.NotNil(t, st.PythonLessons)
}

func TestSnapshot_OrderingAndSlides(t *testing.T) {
	db := testutil.DB(t)

	require.NoError(t, db.Create(&genModel.GenerationModel{ID: "g_1", Name: "G", NameKey: "g"}).Error)
	require.NoError(t, db.Create(&[]taskModel.TaskModel{
		{ID: "t_old", GenID: "g_1", Title: "old", CreatedAt: 100},
		{ID: "t_new", GenID: "g_1", Title: "new", CreatedAt: 300},
		{ID: "t_mid", GenID: "g_1", Title: "mid", CreatedAt: 200},
	}).Error)
	require.NoError(t, db.Create(&[]taskDocModel.TaskDocModel{
		{ID: "doc_old", TaskID: "t_old", DisplayName: "a", Filename: "a", Mime: "m", URL: "/uploads/a", CreatedAt: 1},
		{ID: "doc_new", TaskID: "t_old", DisplayName: "b", Filename: "b", Mime: "m", URL: "/uploads/b", CreatedAt: 2},
	}).Error)
	require.NoError(t, db.Create(&[]lessonModel.PythonLessonModel{
		{ID: "py_old", Title: "old", CreatedAt: 10, Slides: datatypes.NewJSONType([]lessonModel.Slide{{Title: "s", Bullets: []string{}}})},
		{ID: "py_new", Title: "new", CreatedAt: 20, Slides: datatypes.NewJSONType([]lessonModel.Slide{
			{Title: "one", Bullets: []string{"a"}},
			{Title: "two", Bullets: []string{}, Code: "print(1)"},
		})},
	}).Error)

	st, err := service.NewStateService(db, zap.NewNop()).Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, st.Generations, 1)
	assert.Equal(t, []string{"t_new", "t_mid", "t_old"}, []string{st.Tasks[0].ID, st.Tasks[1].ID, st.Tasks[2].ID})
	assert.Equal(t, []string{"doc_new", "doc_old"}, []string{st.TaskDocs[0].ID, st.TaskDocs[1].ID})
	require.Len(t, st.PythonLessons, 2)
	assert.Equal(t, "py_new", st.PythonLessons[0].ID)

	s := st.PythonLessons[0].Slides.Data()
	require.Len(t, s, 2)
	assert.Equal(t, "print(1)", s[1].Code)
}

type listFunc[T any] func(ctx context.Context) ([]T, error)

func (f listFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

func TestSnapshot_StopsOnListError(t *testing.T) {
	boom := errors.New("boom")
	lessonsCalled := false

	svc := &service.StateService{
		Generations: listFunc[genModel.GenerationModel](func(context.Context) ([]genModel.GenerationModel, error) {
			return []genModel.GenerationModel{}, nil
		}),
		Tasks: listFunc[taskModel.TaskModel](func(context.Context) ([]taskModel.TaskModel, error) {
			return nil, boom
		}),
		TaskDocs: listFunc[taskDocModel.TaskDocModel](func(context.Context) ([]taskDocModel.TaskDocModel, error) {
			return []taskDocModel.TaskDocModel{}, nil
		}),
		Lessons: listFunc[lessonModel.PythonLessonModel](func(context.Context) ([]lessonModel.PythonLessonModel, error) {
			lessonsCalled = true
			return []lessonModel.PythonLessonModel{}, nil
		}),
	}

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, lessonsCalled)
}
