package converter

import (
	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
)

// ManagerToResponse converts an OrganizationManager with its role and
// grants preloaded.
func ManagerToResponse(manager *entity.OrganizationManager) *dto.ManagerResponse {
	if manager == nil {
		return nil
	}

	grants := make([]dto.RoleGrantResponse, len(manager.Grants))
	for i, grant := range manager.Grants {
		grants[i] = dto.RoleGrantResponse{
			ID:         grant.ID,
			Role:       grant.Role.Name,
			ScopeType:  string(grant.ScopeType),
			LocationID: grant.LocationID,
		}
	}

	return &dto.ManagerResponse{
		ID:       manager.ID,
		Email:    manager.User.Email,
		FullName: manager.User.FullName,
		Role: dto.RoleResponse{
			ID:           manager.Role.ID,
			Name:         manager.Role.Name,
			IsSystemRole: manager.Role.IsSystemRole,
			Organization: manager.Role.OrganizationID,
		},
		Grants: grants,
	}
}

// ManagersToResponses converts a slice of managers
func ManagersToResponses(managers []entity.OrganizationManager) []dto.ManagerResponse {
	responses := make([]dto.ManagerResponse, len(managers))
	for i := range managers {
		responses[i] = *ManagerToResponse(&managers[i])
	}
	return responses
}
