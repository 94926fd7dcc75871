package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type AssignRoleRequest struct {
	OrganizationManagerID uuid.UUID `json:"organization_manager_id" validate:"required"`
	OrganizationRoleID    uuid.UUID `json:"organization_role_id" validate:"required"`
}

type GrantRoleExceptionRequest struct {
	OrganizationManagerID uuid.UUID  `json:"organization_manager_id" validate:"required"`
	OrganizationRoleID    uuid.UUID  `json:"organization_role_id" validate:"required"`
	ScopeType             string     `json:"scope_type" validate:"required,oneof=ORG LOCATION"`
	LocationID            *uuid.UUID `json:"location_id" validate:"omitempty"`
}

type InviteManagerRequest struct {
	Email              string    `json:"email" validate:"required,email"`
	OrganizationRoleID uuid.UUID `json:"organization_role_id" validate:"required"`
}

// Response DTOs

type RoleResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	IsSystemRole bool       `json:"is_system_role"`
	Organization *uuid.UUID `json:"organization_id,omitempty"`
}

type RoleGrantResponse struct {
	ID         uuid.UUID  `json:"id"`
	Role       string     `json:"role"`
	ScopeType  string     `json:"scope_type"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

type ManagerResponse struct {
	ID       uuid.UUID           `json:"id"`
	Email    string              `json:"email"`
	FullName string              `json:"full_name"`
	Role     RoleResponse        `json:"role"`
	Grants   []RoleGrantResponse `json:"grants,omitempty"`
}

type ManagerListResponse struct {
	Managers []ManagerResponse `json:"managers"`
	Total    int               `json:"total"`
}

type InvitationResponse struct {
	Email         string `json:"email"`
	InvitationURL string `json:"invitation_url"`
}
