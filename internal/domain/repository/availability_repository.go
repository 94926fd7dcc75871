package repository

import (
	"time"

	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyHoursRepository interface {
	FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.WeeklyHours, error)
	// ReplaceForProfile deletes the profile's weekly records and inserts
	// the given set in one shot; callers wrap it in a transaction.
	ReplaceForProfile(db *gorm.DB, profileID uuid.UUID, records []entity.WeeklyHours) error
}

type OverrideHoursRepository interface {
	FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.OverrideHours, error)
	FindByProfileIDAndDate(db *gorm.DB, profileID uuid.UUID, date time.Time) (*entity.OverrideHours, error)
	Create(db *gorm.DB, override *entity.OverrideHours) error
	Update(db *gorm.DB, override *entity.OverrideHours) error
	DeleteByProfileIDAndDate(db *gorm.DB, profileID uuid.UUID, date time.Time) (int64, error)
}
