package repository

import (
	"errors"

	"ime-admin-service/internal/domain/entity"
	domainRepo "ime-admin-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type organizationRoleRepository struct{}

func NewOrganizationRoleRepository() domainRepo.OrganizationRoleRepository {
	return &organizationRoleRepository{}
}

func (r *organizationRoleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationRole, error) {
	var role entity.OrganizationRole
	err := db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *organizationRoleRepository) FindSystemRoleByName(db *gorm.DB, name string) (*entity.OrganizationRole, error) {
	var role entity.OrganizationRole
	err := db.Where("name = ? AND is_system_role = ?", name, true).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

type organizationManagerRepository struct{}

func NewOrganizationManagerRepository() domainRepo.OrganizationManagerRepository {
	return &organizationManagerRepository{}
}

func (r *organizationManagerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationManager, error) {
	var manager entity.OrganizationManager
	err := db.Preload("User").Preload("Role").Where("id = ?", id).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &manager, nil
}

func (r *organizationManagerRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OrganizationManager, error) {
	var manager entity.OrganizationManager
	err := db.Preload("Role").Where("user_id = ?", userID).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &manager, nil
}

func (r *organizationManagerRepository) FindByOrganizationID(db *gorm.DB, organizationID uuid.UUID) ([]entity.OrganizationManager, error) {
	var managers []entity.OrganizationManager
	err := db.Preload("User").Preload("Role").Preload("Grants").
		Where("organization_id = ?", organizationID).Find(&managers).Error
	if err != nil {
		return nil, err
	}
	return managers, nil
}

func (r *organizationManagerRepository) FindOtherHolderOfRole(db *gorm.DB, organizationID, roleID, excludeManagerID uuid.UUID) (*entity.OrganizationManager, error) {
	var manager entity.OrganizationManager
	err := db.Where("organization_id = ? AND organization_role_id = ? AND id <> ?", organizationID, roleID, excludeManagerID).
		First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &manager, nil
}

func (r *organizationManagerRepository) Update(db *gorm.DB, manager *entity.OrganizationManager) error {
	return db.Save(manager).Error
}

type userRoleGrantRepository struct{}

func NewUserRoleGrantRepository() domainRepo.UserRoleGrantRepository {
	return &userRoleGrantRepository{}
}

func (r *userRoleGrantRepository) Create(db *gorm.DB, grant *entity.UserRoleGrant) error {
	return db.Create(grant).Error
}

func (r *userRoleGrantRepository) FindIdentical(db *gorm.DB, grant *entity.UserRoleGrant) (*entity.UserRoleGrant, error) {
	query := db.Where(
		"organization_manager_id = ? AND organization_role_id = ? AND scope_type = ?",
		grant.OrganizationManagerID, grant.OrganizationRoleID, grant.ScopeType,
	)
	if grant.LocationID != nil {
		query = query.Where("location_id = ?", *grant.LocationID)
	} else {
		query = query.Where("location_id IS NULL")
	}

	var existing entity.UserRoleGrant
	err := query.First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}

func (r *userRoleGrantRepository) FindByManagerID(db *gorm.DB, managerID uuid.UUID) ([]entity.UserRoleGrant, error) {
	var grants []entity.UserRoleGrant
	err := db.Preload("Role").Preload("Location").
		Where("organization_manager_id = ?", managerID).Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := db.Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}
