package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant: a referral company whose managers run the
// organization portal.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Locations []Location            `gorm:"foreignKey:OrganizationID" json:"locations,omitempty"`
	Managers  []OrganizationManager `gorm:"foreignKey:OrganizationID" json:"managers,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Location is a physical office of an organization; LOCATION-scoped role
// grants reference one.
type Location struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}
