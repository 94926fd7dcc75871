package repository

import (
	"errors"

	"ime-admin-service/internal/domain/entity"
	domainRepo "ime-admin-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type examinationRepository struct{}

func NewExaminationRepository() domainRepo.ExaminationRepository {
	return &examinationRepository{}
}

func (r *examinationRepository) FindByIDWithCase(db *gorm.DB, id uuid.UUID) (*entity.Examination, error) {
	var examination entity.Examination
	err := db.Preload("Case").Preload("Case.Claimant").Where("id = ?", id).First(&examination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &examination, nil
}

type secureLinkRepository struct{}

func NewSecureLinkRepository() domainRepo.SecureLinkRepository {
	return &secureLinkRepository{}
}

func (r *secureLinkRepository) Create(db *gorm.DB, link *entity.ExaminationSecureLink) error {
	return db.Create(link).Error
}

func (r *secureLinkRepository) FindByToken(db *gorm.DB, token string) (*entity.ExaminationSecureLink, error) {
	var link entity.ExaminationSecureLink
	err := db.Where("token = ?", token).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *secureLinkRepository) Update(db *gorm.DB, link *entity.ExaminationSecureLink) error {
	return db.Save(link).Error
}
