package entity

import (
	"time"

	"github.com/google/uuid"
)

// Claimant is the person being examined. Secure booking links are
// addressed to the claimant's email.
type Claimant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Claimant) TableName() string {
	return "claimants"
}

// Case is one IME case opened by an organization for a claimant.
type Case struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CaseNumber     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"case_number"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	ClaimantID     uuid.UUID `gorm:"type:uuid;not null;index" json:"claimant_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Claimant     Claimant     `gorm:"foreignKey:ClaimantID" json:"claimant,omitempty"`
}

func (Case) TableName() string {
	return "cases"
}

// Examination is one scheduled (or to-be-scheduled) examination within a
// case.
type Examination struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CaseID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_id"`
	ExaminerProfileID *uuid.UUID `gorm:"type:uuid;index" json:"examiner_profile_id,omitempty"`
	ScheduledAt       *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Case     Case             `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	Examiner *ExaminerProfile `gorm:"foreignKey:ExaminerProfileID" json:"examiner,omitempty"`
}

func (Examination) TableName() string {
	return "examinations"
}

// SecureLinkStatus tracks the audit state of an issued claimant link.
type SecureLinkStatus string

const (
	SecureLinkStatusPending SecureLinkStatus = "PENDING"
	SecureLinkStatusUsed    SecureLinkStatus = "USED"
	SecureLinkStatusExpired SecureLinkStatus = "EXPIRED"
)

// ExaminationSecureLink is the stored alias of a claimant booking token.
// Token is an opaque UUID, not the signed JWT: the JWT exceeds the
// fixed-width column and is only ever carried in the emailed URL. The row
// exists for audit and status tracking; the JWT is verified independently
// at consumption time.
type ExaminationSecureLink struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ExaminationID uuid.UUID        `gorm:"type:uuid;not null;index" json:"examination_id"`
	Token         string           `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	ExpiresAt     time.Time        `gorm:"not null" json:"expires_at"`
	Status        SecureLinkStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Examination Examination `gorm:"foreignKey:ExaminationID" json:"examination,omitempty"`
}

func (ExaminationSecureLink) TableName() string {
	return "examination_secure_links"
}

func (l *ExaminationSecureLink) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
