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

type SecureLinkHandler struct {
	linkUsecase usecase.SecureLinkUsecase
	validator   *validator.CustomValidator
}

func NewSecureLinkHandler(linkUsecase usecase.SecureLinkUsecase, validator *validator.CustomValidator) *SecureLinkHandler {
	return &SecureLinkHandler{
		linkUsecase: linkUsecase,
		validator:   validator,
	}
}

func (h *SecureLinkHandler) CreateSecureLink(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.CreateSecureLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	link, err := h.linkUsecase.CreateSecureLink(r.Context(), actorID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to create secure link")
		return
	}

	response.Success(w, http.StatusCreated, "Secure link created", link)
}

// ConsumeSecureLink is public: the claimant presents the emailed token,
// no session required.
func (h *SecureLinkHandler) ConsumeSecureLink(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsumeSecureLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	claims, err := h.linkUsecase.ConsumeSecureLink(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to verify link")
		return
	}

	response.Success(w, http.StatusOK, "Link verified", claims)
}
