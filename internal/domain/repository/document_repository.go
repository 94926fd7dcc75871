package repository

import (
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, doc *entity.ExaminerDocument) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ExaminerDocument, error)
	FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.ExaminerDocument, error)
}
