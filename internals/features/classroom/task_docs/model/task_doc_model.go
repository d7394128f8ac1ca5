// file: internals/features/classroom/task_docs/model/task_doc_model.go
package model

type TaskDocModel struct {
	ID          string `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	TaskID      string `gorm:"column:task_id;type:varchar(64);not null;index:idx_task_docs_task_id" json:"taskId"`
	DisplayName string `gorm:"column:display_name;type:text;not null" json:"displayName"`
	Filename    string `gorm:"column:filename;type:text;not null" json:"filename"` // original upload name
	Mime        string `gorm:"column:mime;type:text;not null" json:"mime"`
	Size        int64  `gorm:"column:size;not null;default:0" json:"size"`
	URL         string `gorm:"column:url;type:text;not null" json:"url"`
	CreatedAt   int64  `gorm:"column:created_at;not null;autoCreateTime:false;index:idx_task_docs_created_at" json:"createdAt"`
}

func (TaskDocModel) TableName() string {
	return "task_docs"
}
