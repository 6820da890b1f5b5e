package models

import (
	"time"

	"gorm.io/datatypes"
)

// UploadTaskStatus defines the status of a bulk upload task
type UploadTaskStatus int

const (
	UploadStatusPending    UploadTaskStatus = 1
	UploadStatusProcessing UploadTaskStatus = 2
	UploadStatusCompleted  UploadTaskStatus = 3
	UploadStatusFailed     UploadTaskStatus = 4
)

// UploadTask tracks one bulk CSV import processed by the background
// worker.
type UploadTask struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CreatorID     uint             `json:"creator_id"`
	CreatorName   string           `json:"creator_name"`
	Kind          string           `gorm:"type:varchar(20)" json:"kind"` // profiles | companies
	FieldMapping  datatypes.JSON   `gorm:"type:json" json:"field_mapping" swaggertype:"object"`
	RawData       []byte           `gorm:"type:bytea" json:"-"`
	Status        UploadTaskStatus `json:"status"`
	TotalRows     int              `json:"total_rows"`
	ProcessedRows int              `json:"processed_rows"`
	SuccessCount  int              `json:"success_count"`
	ErrorCount    int              `json:"error_count"`
	ErrorLog      string           `gorm:"type:text" json:"error_log"`
}

// TableName overrides the table name
func (UploadTask) TableName() string {
	return "upload_tasks"
}
