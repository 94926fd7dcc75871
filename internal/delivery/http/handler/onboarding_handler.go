package handler

import (
	"encoding/json"
	"net/http"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/delivery/http/middleware"
	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/response"
	"ime-admin-service/pkg/validator"

	"github.com/gorilla/mux"
)

type OnboardingHandler struct {
	onboardingUsecase usecase.OnboardingUsecase
	validator         *validator.CustomValidator
}

func NewOnboardingHandler(onboardingUsecase usecase.OnboardingUsecase, validator *validator.CustomValidator) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUsecase: onboardingUsecase,
		validator:         validator,
	}
}

func (h *OnboardingHandler) CompleteStep(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	var req dto.CompleteStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	progress, err := h.onboardingUsecase.CompleteStep(r.Context(), actorID, profileID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to complete step")
		return
	}

	response.Success(w, http.StatusOK, "Step completed", progress)
}

func (h *OnboardingHandler) UncompleteStep(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	stepID := mux.Vars(r)["stepId"]
	if stepID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid step ID", nil)
		return
	}

	progress, err := h.onboardingUsecase.UncompleteStep(r.Context(), actorID, profileID, stepID)
	if err != nil {
		response.FromError(w, err, "Failed to uncomplete step")
		return
	}

	response.Success(w, http.StatusOK, "Step uncompleted", progress)
}

func (h *OnboardingHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	progress, err := h.onboardingUsecase.GetProgress(r.Context(), profileID)
	if err != nil {
		response.FromError(w, err, "Failed to get onboarding progress")
		return
	}

	response.Success(w, http.StatusOK, "Onboarding progress retrieved", progress)
}
