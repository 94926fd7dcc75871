package converter

import (
	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
)

// ExaminerProfileToResponse converts an ExaminerProfile entity to its DTO
func ExaminerProfileToResponse(profile *entity.ExaminerProfile) *dto.ExaminerResponse {
	if profile == nil {
		return nil
	}

	return &dto.ExaminerResponse{
		ID:             profile.ID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		Specialty:      profile.Specialty,
		LicenseNumber:  profile.LicenseNumber,
		Biography:      profile.Biography,
		Status:         string(profile.Status),
		ActivationStep: profile.ActivationStep,
		ApprovedAt:     profile.ApprovedAt,
		ApprovedBy:     profile.ApprovedBy,
	}
}

// ExaminerProfilesToResponses converts a slice of profiles
func ExaminerProfilesToResponses(profiles []entity.ExaminerProfile) []dto.ExaminerResponse {
	responses := make([]dto.ExaminerResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ExaminerProfileToResponse(&profiles[i])
	}
	return responses
}

// OnboardingProgress builds the progress DTO from the serialized step
// state.
func OnboardingProgress(profile *entity.ExaminerProfile) *dto.OnboardingProgressResponse {
	return &dto.OnboardingProgressResponse{
		ActivationStep: profile.ActivationStep,
		CompletedSteps: entity.ParseCompletedSteps(profile.ActivationStep),
		FullyOnboarded: entity.AllStepsCompleted(profile.ActivationStep),
		ExaminerStatus: string(profile.Status),
	}
}
