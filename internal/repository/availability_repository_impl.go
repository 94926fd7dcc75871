package repository

import (
	"errors"
	"time"

	"ime-admin-service/internal/domain/entity"
	domainRepo "ime-admin-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type weeklyHoursRepository struct{}

func NewWeeklyHoursRepository() domainRepo.WeeklyHoursRepository {
	return &weeklyHoursRepository{}
}

func (r *weeklyHoursRepository) FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.WeeklyHours, error) {
	var records []entity.WeeklyHours
	err := db.Where("examiner_profile_id = ?", profileID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *weeklyHoursRepository) ReplaceForProfile(db *gorm.DB, profileID uuid.UUID, records []entity.WeeklyHours) error {
	if err := db.Where("examiner_profile_id = ?", profileID).Delete(&entity.WeeklyHours{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	return db.Create(&records).Error
}

type overrideHoursRepository struct{}

func NewOverrideHoursRepository() domainRepo.OverrideHoursRepository {
	return &overrideHoursRepository{}
}

func (r *overrideHoursRepository) FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.OverrideHours, error) {
	var records []entity.OverrideHours
	err := db.Where("examiner_profile_id = ?", profileID).Order("date asc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *overrideHoursRepository) FindByProfileIDAndDate(db *gorm.DB, profileID uuid.UUID, date time.Time) (*entity.OverrideHours, error) {
	var record entity.OverrideHours
	err := db.Where("examiner_profile_id = ? AND date = ?", profileID, date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *overrideHoursRepository) Create(db *gorm.DB, override *entity.OverrideHours) error {
	return db.Create(override).Error
}

func (r *overrideHoursRepository) Update(db *gorm.DB, override *entity.OverrideHours) error {
	return db.Save(override).Error
}

func (r *overrideHoursRepository) DeleteByProfileIDAndDate(db *gorm.DB, profileID uuid.UUID, date time.Time) (int64, error) {
	result := db.Where("examiner_profile_id = ? AND date = ?", profileID, date).Delete(&entity.OverrideHours{})
	return result.RowsAffected, result.Error
}
