package repository

import (
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExaminationRepository interface {
	// FindByIDWithCase preloads the case and its claimant.
	FindByIDWithCase(db *gorm.DB, id uuid.UUID) (*entity.Examination, error)
}

type SecureLinkRepository interface {
	Create(db *gorm.DB, link *entity.ExaminationSecureLink) error
	FindByToken(db *gorm.DB, token string) (*entity.ExaminationSecureLink, error)
	Update(db *gorm.DB, link *entity.ExaminationSecureLink) error
}
