package repository

import (
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExaminerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ExaminerProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ExaminerProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ExaminerProfile, error)
	FindAll(db *gorm.DB) ([]entity.ExaminerProfile, error)
	Update(db *gorm.DB, profile *entity.ExaminerProfile) error
}
