package repository

import (
	"ime-admin-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRoleRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationRole, error)
	FindSystemRoleByName(db *gorm.DB, name string) (*entity.OrganizationRole, error)
}

type OrganizationManagerRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationManager, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OrganizationManager, error)
	FindByOrganizationID(db *gorm.DB, organizationID uuid.UUID) ([]entity.OrganizationManager, error)
	// FindOtherHolderOfRole returns a manager in the organization holding
	// roleID whose ID differs from excludeManagerID, or nil.
	FindOtherHolderOfRole(db *gorm.DB, organizationID, roleID, excludeManagerID uuid.UUID) (*entity.OrganizationManager, error)
	Update(db *gorm.DB, manager *entity.OrganizationManager) error
}

type UserRoleGrantRepository interface {
	Create(db *gorm.DB, grant *entity.UserRoleGrant) error
	// FindIdentical matches on manager, role, scope and location to detect
	// duplicate grants.
	FindIdentical(db *gorm.DB, grant *entity.UserRoleGrant) (*entity.UserRoleGrant, error)
	FindByManagerID(db *gorm.DB, managerID uuid.UUID) ([]entity.UserRoleGrant, error)
}

type LocationRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error)
}
