package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role name constants. SUPER_ADMIN is a system role with an at-most-one
// active holder per organization invariant.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleOrgAdmin   = "ORG_ADMIN"
	RoleExaminer   = "EXAMINER"
)

// OrganizationRole is either a system role (OrganizationID nil) or a role
// defined by one organization for its own managers.
type OrganizationRole struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:varchar(100);not null;index" json:"name"`
	IsSystemRole   bool       `gorm:"not null;default:false" json:"is_system_role"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (OrganizationRole) TableName() string {
	return "organization_roles"
}

// BelongsTo reports whether the role is usable inside the given
// organization: system roles are global, organization roles only apply to
// their own organization.
func (r *OrganizationRole) BelongsTo(organizationID uuid.UUID) bool {
	if r.IsSystemRole {
		return true
	}
	return r.OrganizationID != nil && *r.OrganizationID == organizationID
}

// IsSuperAdmin reports whether this is the system SUPER_ADMIN role.
func (r *OrganizationRole) IsSuperAdmin() bool {
	return r.IsSystemRole && r.Name == RoleSuperAdmin
}

// OrganizationManager is a user's membership in one organization with a
// single primary role. Scope exceptions live in UserRoleGrant.
type OrganizationManager struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID     uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationRoleID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_role_id"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Organization Organization       `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Role         OrganizationRole   `gorm:"foreignKey:OrganizationRoleID" json:"role,omitempty"`
	Grants       []UserRoleGrant    `gorm:"foreignKey:OrganizationManagerID" json:"grants,omitempty"`
}

func (OrganizationManager) TableName() string {
	return "organization_managers"
}

// GrantScope qualifies a role exception: organization-wide or limited to
// one location.
type GrantScope string

const (
	GrantScopeOrg      GrantScope = "ORG"
	GrantScopeLocation GrantScope = "LOCATION"
)

// UserRoleGrant is an additive, scope-qualified role layered on top of a
// manager's primary role so one-off exceptions don't require new roles.
type UserRoleGrant struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrganizationManagerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_manager_id"`
	OrganizationRoleID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_role_id"`
	ScopeType             GrantScope `gorm:"type:varchar(20);not null" json:"scope_type"`
	LocationID            *uuid.UUID `gorm:"type:uuid;index" json:"location_id,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Manager  OrganizationManager `gorm:"foreignKey:OrganizationManagerID" json:"manager,omitempty"`
	Role     OrganizationRole    `gorm:"foreignKey:OrganizationRoleID" json:"role,omitempty"`
	Location *Location           `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (UserRoleGrant) TableName() string {
	return "user_role_grants"
}
