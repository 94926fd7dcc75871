package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus mirrors the examiner profile status for accounts that have
// no profile of their own (organization managers, admins).
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User represents the centralized authentication table shared by admins,
// organization managers and examiners.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	FullName  string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Status    UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ExaminerProfile *ExaminerProfile     `gorm:"foreignKey:UserID" json:"examiner_profile,omitempty"`
	Memberships     []OrganizationManager `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
