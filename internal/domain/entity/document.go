package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExaminerDocument references an uploaded file by its object-storage key.
// Bytes live in the object store; this row is the catalog entry.
type ExaminerDocument struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExaminerProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"examiner_profile_id"`
	Category          string    `gorm:"type:varchar(50);not null;index" json:"category"`
	FileName          string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ObjectKey         string    `gorm:"type:varchar(512);uniqueIndex;not null" json:"object_key"`
	ContentType       string    `gorm:"type:varchar(100)" json:"content_type,omitempty"`
	Size              int64     `json:"size"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Profile ExaminerProfile `gorm:"foreignKey:ExaminerProfileID" json:"profile,omitempty"`
}

func (ExaminerDocument) TableName() string {
	return "examiner_documents"
}
