package repository

import (
	"errors"

	"ime-admin-service/internal/domain/entity"
	domainRepo "ime-admin-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type examinerProfileRepository struct{}

func NewExaminerProfileRepository() domainRepo.ExaminerProfileRepository {
	return &examinerProfileRepository{}
}

func (r *examinerProfileRepository) Create(db *gorm.DB, profile *entity.ExaminerProfile) error {
	return db.Create(profile).Error
}

func (r *examinerProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ExaminerProfile, error) {
	var profile entity.ExaminerProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *examinerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ExaminerProfile, error) {
	var profile entity.ExaminerProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *examinerProfileRepository) FindAll(db *gorm.DB) ([]entity.ExaminerProfile, error) {
	var profiles []entity.ExaminerProfile
	err := db.Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *examinerProfileRepository) Update(db *gorm.DB, profile *entity.ExaminerProfile) error {
	return db.Save(profile).Error
}
