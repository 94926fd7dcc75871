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

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) SaveWeeklyHours(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SaveWeeklyHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.availabilityUsecase.SaveWeeklyHours(r.Context(), actorID, profileID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to save weekly hours")
		return
	}

	response.Success(w, http.StatusOK, "Weekly hours saved", schedule)
}

func (h *AvailabilityHandler) GetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	schedule, err := h.availabilityUsecase.GetWeeklyHours(r.Context(), profileID)
	if err != nil {
		response.FromError(w, err, "Failed to get weekly hours")
		return
	}

	response.Success(w, http.StatusOK, "Weekly hours retrieved", schedule)
}

func (h *AvailabilityHandler) SaveOverrideHours(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SaveOverrideHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	override, err := h.availabilityUsecase.SaveOverrideHours(r.Context(), actorID, profileID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to save override hours")
		return
	}

	response.Success(w, http.StatusOK, "Override hours saved", override)
}

func (h *AvailabilityHandler) GetOverrideHours(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	overrides, err := h.availabilityUsecase.GetOverrideHours(r.Context(), profileID)
	if err != nil {
		response.FromError(w, err, "Failed to get override hours")
		return
	}

	response.Success(w, http.StatusOK, "Override hours retrieved", overrides)
}

func (h *AvailabilityHandler) DeleteOverrideHours(w http.ResponseWriter, r *http.Request) {
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

	date := mux.Vars(r)["date"]
	if err := h.availabilityUsecase.DeleteOverrideHours(r.Context(), actorID, profileID, date); err != nil {
		response.FromError(w, err, "Failed to delete override hours")
		return
	}

	response.Success(w, http.StatusOK, "Override hours deleted", nil)
}
