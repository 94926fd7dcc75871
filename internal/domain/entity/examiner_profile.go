package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExaminerStatus is the examiner application/profile state.
//
//	PENDING -> ACCEPTED | REJECTED
//	ACCEPTED <-> ACTIVE | SUSPENDED
//	REJECTED is terminal; a rejected examiner is never re-approved.
type ExaminerStatus string

const (
	ExaminerStatusPending   ExaminerStatus = "PENDING"
	ExaminerStatusAccepted  ExaminerStatus = "ACCEPTED"
	ExaminerStatusRejected  ExaminerStatus = "REJECTED"
	ExaminerStatusActive    ExaminerStatus = "ACTIVE"
	ExaminerStatusSuspended ExaminerStatus = "SUSPENDED"
)

// ExaminerProfile holds examiner-specific data. Profiles are never hard
// deleted; rejection and suspension are status changes.
type ExaminerProfile struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty      string         `gorm:"type:varchar(100);index" json:"specialty"`
	LicenseNumber  string         `gorm:"type:varchar(50)" json:"license_number,omitempty"`
	Biography      string         `gorm:"type:text" json:"biography,omitempty"`
	ActivationStep string         `gorm:"type:varchar(255);not null;default:''" json:"activation_step"`
	Status         ExaminerStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy     *uuid.UUID     `gorm:"type:uuid" json:"approved_by,omitempty"`
	SuspendReason  string         `gorm:"type:text" json:"suspend_reason,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User        User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	WeeklyHours []WeeklyHours   `gorm:"foreignKey:ExaminerProfileID" json:"weekly_hours,omitempty"`
	Overrides   []OverrideHours `gorm:"foreignKey:ExaminerProfileID" json:"overrides,omitempty"`
}

func (ExaminerProfile) TableName() string {
	return "examiner_profiles"
}

func (p *ExaminerProfile) IsApproved() bool {
	return p.Status == ExaminerStatusAccepted || p.Status == ExaminerStatusActive || p.Status == ExaminerStatusSuspended
}

func (p *ExaminerProfile) IsRejected() bool {
	return p.Status == ExaminerStatusRejected
}

// EffectiveStatus resolves the status used by toggle operations: the
// profile status wins, the linked account status is the fallback.
func (p *ExaminerProfile) EffectiveStatus() ExaminerStatus {
	if p.Status != "" {
		return p.Status
	}
	if p.User.Status == UserStatusSuspended {
		return ExaminerStatusSuspended
	}
	return ExaminerStatusActive
}

// CanToggle reports whether status is one of the two toggleable states.
func (s ExaminerStatus) CanToggle() bool {
	return s == ExaminerStatusActive || s == ExaminerStatusSuspended
}

// Toggled returns the opposite toggleable state.
func (s ExaminerStatus) Toggled() ExaminerStatus {
	if s == ExaminerStatusActive {
		return ExaminerStatusSuspended
	}
	return ExaminerStatusActive
}
