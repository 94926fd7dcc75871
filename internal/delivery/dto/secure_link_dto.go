package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSecureLinkRequest struct {
	ExaminationID  uuid.UUID `json:"examination_id" validate:"required"`
	ExpiresInHours int       `json:"expires_in_hours" validate:"required,gte=1,lte=2160"`
}

type ConsumeSecureLinkRequest struct {
	// Token is the signed JWT from the emailed URL; Ref is the stored
	// UUID alias used for status tracking.
	Token string `json:"token" validate:"required"`
	Ref   string `json:"ref" validate:"required"`
}

// Response DTOs

type SecureLinkResponse struct {
	URL       string    `json:"url"`
	Token     string    `json:"token"` // opaque UUID reference, not the JWT
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn string    `json:"expires_in"`
}

type SecureLinkClaimsResponse struct {
	Email         string `json:"email"`
	CaseID        string `json:"caseId"`
	ExaminationID string `json:"examinationId"`
}
