package handler

import (
	"encoding/json"
	"net/http"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/delivery/http/middleware"
	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/response"
	"ime-admin-service/pkg/validator"
)

type RoleHandler struct {
	roleUsecase usecase.RoleAssignmentUsecase
	validator   *validator.CustomValidator
}

func NewRoleHandler(roleUsecase usecase.RoleAssignmentUsecase, validator *validator.CustomValidator) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		validator:   validator,
	}
}

func (h *RoleHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	manager, err := h.roleUsecase.AssignRole(r.Context(), actorID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to assign role")
		return
	}

	response.Success(w, http.StatusOK, "Role assigned successfully", manager)
}

func (h *RoleHandler) GrantRoleException(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.GrantRoleExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	grant, err := h.roleUsecase.GrantRoleException(r.Context(), actorID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to grant role")
		return
	}

	response.Success(w, http.StatusCreated, "Role granted successfully", grant)
}

func (h *RoleHandler) InviteManager(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	organizationID, err := pathID(r, "orgId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid organization ID", nil)
		return
	}

	var req dto.InviteManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invitation, err := h.roleUsecase.InviteManager(r.Context(), actorID, organizationID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to invite manager")
		return
	}

	response.Success(w, http.StatusCreated, "Invitation sent", invitation)
}

func (h *RoleHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	organizationID, err := pathID(r, "orgId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid organization ID", nil)
		return
	}

	managers, err := h.roleUsecase.ListManagers(r.Context(), organizationID)
	if err != nil {
		response.FromError(w, err, "Failed to list managers")
		return
	}

	response.Success(w, http.StatusOK, "Managers retrieved successfully", managers)
}
