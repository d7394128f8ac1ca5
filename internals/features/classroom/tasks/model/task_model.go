// file: internals/features/classroom/tasks/model/task_model.go
package model

// TaskModel belongs to one generation through GenID. The generation is not
// required to exist.
type TaskModel struct {
	ID        string `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	GenID     string `gorm:"column:gen_id;type:varchar(64);not null;index:idx_tasks_gen_id" json:"genId"`
	Title     string `gorm:"column:title;type:text;not null" json:"title"`
	Descr     string `gorm:"column:descr;type:text;not null;default:''" json:"descr"`
	CreatedAt int64  `gorm:"column:created_at;not null;autoCreateTime:false;index:idx_tasks_created_at" json:"createdAt"` // unix ms
}

func (TaskModel) TableName() string {
	return "tasks"
}
