package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Day-of-week enum values as persisted.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// TimeSlot is a start/end pair kept as entered ("H:MM AM/PM" from the
// portal UI). This layer performs no overlap or validity checking.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeSlots is a jsonb column of ordered slots.
type TimeSlots []TimeSlot

// Value implements driver.Valuer.
func (t TimeSlots) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal(TimeSlots{})
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *TimeSlots) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal time slots value:", value))
	}
	return json.Unmarshal(bytes, t)
}

// WeeklyHours is one examiner's recurring availability for one weekday.
// At most one record exists per (profile, day); a missing day reads as
// disabled.
type WeeklyHours struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ExaminerProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weekly_profile_day" json:"examiner_profile_id"`
	DayOfWeek         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_weekly_profile_day" json:"day_of_week"`
	Enabled           bool      `gorm:"not null;default:false" json:"enabled"`
	TimeSlots         TimeSlots `gorm:"type:jsonb" json:"time_slots"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeeklyHours) TableName() string {
	return "weekly_hours"
}

// OverrideHours replaces WeeklyHours for one calendar date. One override
// per (profile, date); writes upsert.
type OverrideHours struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ExaminerProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_override_profile_date" json:"examiner_profile_id"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:idx_override_profile_date" json:"date"`
	Enabled           bool      `gorm:"not null;default:true" json:"enabled"`
	TimeSlots         TimeSlots `gorm:"type:jsonb" json:"time_slots"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OverrideHours) TableName() string {
	return "override_hours"
}
