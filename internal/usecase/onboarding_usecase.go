package usecase

import (
	"context"

	"ime-admin-service/internal/converter"
	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/internal/domain/repository"
	"ime-admin-service/internal/service"
	"ime-admin-service/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OnboardingUsecase tracks examiner activation-step progress. Step state
// is a serialized set on the profile row; completing the final missing
// step activates an accepted examiner.
type OnboardingUsecase interface {
	CompleteStep(ctx context.Context, actorID, profileID uuid.UUID, req *dto.CompleteStepRequest) (*dto.OnboardingProgressResponse, error)
	UncompleteStep(ctx context.Context, actorID, profileID uuid.UUID, stepID string) (*dto.OnboardingProgressResponse, error)
	GetProgress(ctx context.Context, profileID uuid.UUID) (*dto.OnboardingProgressResponse, error)
}

type onboardingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.ExaminerProfileRepository
	auditService service.AuditService
}

func NewOnboardingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ExaminerProfileRepository,
	auditService service.AuditService,
) OnboardingUsecase {
	return &onboardingUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// CompleteStep marks a step done. Re-completing a step is a no-op, not
// an error. When the full step set is complete an ACCEPTED profile is
// promoted to ACTIVE.
func (u *onboardingUsecase) CompleteStep(ctx context.Context, actorID, profileID uuid.UUID, req *dto.CompleteStepRequest) (*dto.OnboardingProgressResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.findProfile(tx, profileID)
	if err != nil {
		return nil, err
	}

	oldState := profile.ActivationStep
	profile.ActivationStep = entity.AddCompletedStep(profile.ActivationStep, req.StepID)

	if entity.AllStepsCompleted(profile.ActivationStep) && profile.Status == entity.ExaminerStatusAccepted {
		profile.Status = entity.ExaminerStatusActive
	}

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update examiner profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionExaminerStepUpdate, "examiner_profile", profile.ID.String(), oldState, profile.ActivationStep); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OnboardingProgress(profile), nil
}

// UncompleteStep unmarks a step, for example when an examiner clears
// their availability again. It never demotes an already ACTIVE profile.
func (u *onboardingUsecase) UncompleteStep(ctx context.Context, actorID, profileID uuid.UUID, stepID string) (*dto.OnboardingProgressResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.findProfile(tx, profileID)
	if err != nil {
		return nil, err
	}

	oldState := profile.ActivationStep
	profile.ActivationStep = entity.RemoveCompletedStep(profile.ActivationStep, stepID)

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update examiner profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionExaminerStepUpdate, "examiner_profile", profile.ID.String(), oldState, profile.ActivationStep); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.OnboardingProgress(profile), nil
}

func (u *onboardingUsecase) GetProgress(ctx context.Context, profileID uuid.UUID) (*dto.OnboardingProgressResponse, error) {
	profile, err := u.findProfile(u.db.WithContext(ctx), profileID)
	if err != nil {
		return nil, err
	}
	return converter.OnboardingProgress(profile), nil
}

func (u *onboardingUsecase) findProfile(db *gorm.DB, profileID uuid.UUID) (*entity.ExaminerProfile, error) {
	profile, err := u.profileRepo.FindByID(db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find examiner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("examiner not found")
	}
	return profile, nil
}
