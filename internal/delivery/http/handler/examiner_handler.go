package handler

import (
	"encoding/json"
	"net/http"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/delivery/http/middleware"
	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/response"
	"ime-admin-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ExaminerHandler struct {
	profileUsecase   usecase.ExaminerProfileUsecase
	lifecycleUsecase usecase.ExaminerLifecycleUsecase
	validator        *validator.CustomValidator
}

func NewExaminerHandler(
	profileUsecase usecase.ExaminerProfileUsecase,
	lifecycleUsecase usecase.ExaminerLifecycleUsecase,
	validator *validator.CustomValidator,
) *ExaminerHandler {
	return &ExaminerHandler{
		profileUsecase:   profileUsecase,
		lifecycleUsecase: lifecycleUsecase,
		validator:        validator,
	}
}

func (h *ExaminerHandler) CreateExaminer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	var req dto.CreateExaminerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	examiner, err := h.profileUsecase.CreateExaminer(r.Context(), actorID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to create examiner")
		return
	}

	response.Success(w, http.StatusCreated, "Examiner created successfully", examiner)
}

func (h *ExaminerHandler) GetExaminer(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	examiner, err := h.profileUsecase.GetExaminer(r.Context(), profileID)
	if err != nil {
		response.FromError(w, err, "Failed to get examiner")
		return
	}

	response.Success(w, http.StatusOK, "Examiner retrieved successfully", examiner)
}

func (h *ExaminerHandler) GetAllExaminers(w http.ResponseWriter, r *http.Request) {
	examiners, err := h.profileUsecase.GetAllExaminers(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get examiners")
		return
	}

	response.Success(w, http.StatusOK, "Examiners retrieved successfully", examiners)
}

func (h *ExaminerHandler) ApproveExaminer(w http.ResponseWriter, r *http.Request) {
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

	examiner, err := h.lifecycleUsecase.Approve(r.Context(), actorID, profileID)
	if err != nil {
		response.FromError(w, err, "Failed to approve examiner")
		return
	}

	response.Success(w, http.StatusOK, "Examiner approved successfully", examiner)
}

func (h *ExaminerHandler) RejectExaminer(w http.ResponseWriter, r *http.Request) {
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

	var req dto.RejectExaminerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	examiner, err := h.lifecycleUsecase.Reject(r.Context(), actorID, profileID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to reject examiner")
		return
	}

	response.Success(w, http.StatusOK, "Examiner rejected", examiner)
}

func (h *ExaminerHandler) SuspendExaminer(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SuspendExaminerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	examiner, err := h.lifecycleUsecase.Suspend(r.Context(), actorID, profileID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to suspend examiner")
		return
	}

	response.Success(w, http.StatusOK, "Examiner suspended", examiner)
}

func (h *ExaminerHandler) ReactivateExaminer(w http.ResponseWriter, r *http.Request) {
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

	examiner, err := h.lifecycleUsecase.Reactivate(r.Context(), actorID, profileID)
	if err != nil {
		response.FromError(w, err, "Failed to reactivate examiner")
		return
	}

	response.Success(w, http.StatusOK, "Examiner reactivated", examiner)
}

func (h *ExaminerHandler) ToggleExaminerStatus(w http.ResponseWriter, r *http.Request) {
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

	examiner, err := h.lifecycleUsecase.ToggleStatus(r.Context(), actorID, profileID)
	if err != nil {
		response.FromError(w, err, "Failed to toggle examiner status")
		return
	}

	response.Success(w, http.StatusOK, "Examiner status toggled", examiner)
}

func (h *ExaminerHandler) ResendApprovalEmail(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid examiner ID", nil)
		return
	}

	if err := h.lifecycleUsecase.ResendApprovalEmail(r.Context(), profileID); err != nil {
		response.FromError(w, err, "Failed to resend approval email")
		return
	}

	response.Success(w, http.StatusOK, "Approval email sent", nil)
}

func (h *ExaminerHandler) RequestInfo(w http.ResponseWriter, r *http.Request) {
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

	var req dto.RequestInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.lifecycleUsecase.RequestInfo(r.Context(), actorID, profileID, &req); err != nil {
		response.FromError(w, err, "Failed to request information")
		return
	}

	response.Success(w, http.StatusOK, "Information request sent", nil)
}

// pathID parses a UUID path variable.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}
