package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateExaminerRequest struct {
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required,min=2"`
	Specialty     string `json:"specialty" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"omitempty"`
	Biography     string `json:"biography" validate:"omitempty"`
}

type SuspendExaminerRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RejectExaminerRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type RequestInfoRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type CompleteStepRequest struct {
	StepID string `json:"step_id" validate:"required"`
}

// Response DTOs

type ExaminerResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Specialty      string     `json:"specialty"`
	LicenseNumber  string     `json:"license_number,omitempty"`
	Biography      string     `json:"biography,omitempty"`
	Status         string     `json:"status"`
	ActivationStep string     `json:"activation_step"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedBy     *uuid.UUID `json:"approved_by,omitempty"`
}

type ExaminerListResponse struct {
	Examiners []ExaminerResponse `json:"examiners"`
	Total     int                `json:"total"`
}

type OnboardingProgressResponse struct {
	ActivationStep  string   `json:"activation_step"`
	CompletedSteps  []string `json:"completed_steps"`
	FullyOnboarded  bool     `json:"fully_onboarded"`
	ExaminerStatus  string   `json:"examiner_status"`
}
