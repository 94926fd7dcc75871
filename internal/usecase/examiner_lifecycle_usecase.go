package usecase

import (
	"context"
	"fmt"

	"ime-admin-service/config"
	"ime-admin-service/internal/converter"
	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/internal/domain/repository"
	"ime-admin-service/internal/service"
	"ime-admin-service/pkg/apperr"
	"ime-admin-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ExaminerLifecycleUsecase owns every examiner status transition:
//
//	PENDING -> ACCEPTED | REJECTED
//	ACCEPTED <-> ACTIVE | SUSPENDED
//	REJECTED is terminal.
type ExaminerLifecycleUsecase interface {
	Approve(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error)
	Reject(ctx context.Context, actorID, profileID uuid.UUID, req *dto.RejectExaminerRequest) (*dto.ExaminerResponse, error)
	Suspend(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SuspendExaminerRequest) (*dto.ExaminerResponse, error)
	Reactivate(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error)
	ToggleStatus(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error)
	ResendApprovalEmail(ctx context.Context, profileID uuid.UUID) error
	RequestInfo(ctx context.Context, actorID, profileID uuid.UUID, req *dto.RequestInfoRequest) error
}

type examinerLifecycleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	links        config.LinksConfig
	profileRepo  repository.ExaminerProfileRepository
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	mailService  service.MailService
	auditService service.AuditService
}

func NewExaminerLifecycleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	links config.LinksConfig,
	profileRepo repository.ExaminerProfileRepository,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	mailService service.MailService,
	auditService service.AuditService,
) ExaminerLifecycleUsecase {
	return &examinerLifecycleUsecase{
		db:           db,
		log:          log,
		links:        links,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		jwtService:   jwtService,
		mailService:  mailService,
		auditService: auditService,
	}
}

// Approve moves a pending examiner to ACCEPTED, stamps who approved and
// when, and emails the password-setup link. The email is best-effort: a
// send failure is logged, not returned, because the approval itself has
// already committed and can be re-sent later.
func (u *examinerLifecycleUsecase) Approve(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.findProfile(tx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.IsApproved() {
		return nil, apperr.Conflict("examiner is already approved")
	}
	if profile.IsRejected() {
		return nil, apperr.Conflict("cannot approve a rejected examiner")
	}

	oldStatus := profile.Status
	now := nowUTC()
	profile.Status = entity.ExaminerStatusAccepted
	profile.ApprovedAt = &now
	profile.ApprovedBy = &actorID

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update examiner profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionExaminerApprove, "examiner_profile", profile.ID.String(), oldStatus, profile.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.sendApprovalEmail(ctx, profile); err != nil {
		u.log.Warnf("Failed to send approval email to %s: %+v", profile.User.Email, err)
	}

	return converter.ExaminerProfileToResponse(profile), nil
}

// Reject declines a pending application. Approved examiners cannot be
// rejected, only suspended.
func (u *examinerLifecycleUsecase) Reject(ctx context.Context, actorID, profileID uuid.UUID, req *dto.RejectExaminerRequest) (*dto.ExaminerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.findProfile(tx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.Status != entity.ExaminerStatusPending {
		return nil, apperr.Conflict(fmt.Sprintf("cannot reject an examiner in %s status", profile.Status))
	}

	oldStatus := profile.Status
	profile.Status = entity.ExaminerStatusRejected
	profile.SuspendReason = req.Reason

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update examiner profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionExaminerReject, "examiner_profile", profile.ID.String(), oldStatus, profile.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	body := fmt.Sprintf("<p>Your examiner application has been declined.</p><p>%s</p>", req.Reason)
	if err := u.mailService.Send(ctx, profile.User.Email, "Application update", body); err != nil {
		u.log.Warnf("Failed to send rejection email to %s: %+v", profile.User.Email, err)
	}

	return converter.ExaminerProfileToResponse(profile), nil
}

// Suspend blocks an examiner from the platform and mirrors the state on
// the login account so sessions stop authenticating.
func (u *examinerLifecycleUsecase) Suspend(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SuspendExaminerRequest) (*dto.ExaminerResponse, error) {
	return u.setStatus(ctx, actorID, profileID, entity.ExaminerStatusSuspended, req.Reason, entity.AuditActionExaminerSuspend)
}

// Reactivate lifts a suspension.
func (u *examinerLifecycleUsecase) Reactivate(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error) {
	return u.setStatus(ctx, actorID, profileID, entity.ExaminerStatusActive, "", entity.AuditActionExaminerReactivate)
}

// ToggleStatus flips an examiner between ACTIVE and SUSPENDED. The
// effective status decides the direction; examiners in any other state
// are not toggleable and the error names the blocking status.
func (u *examinerLifecycleUsecase) ToggleStatus(ctx context.Context, actorID, profileID uuid.UUID) (*dto.ExaminerResponse, error) {
	profile, err := u.findProfile(u.db.WithContext(ctx), profileID)
	if err != nil {
		return nil, err
	}

	current := profile.EffectiveStatus()
	if !current.CanToggle() {
		return nil, apperr.Conflict(fmt.Sprintf("cannot toggle an examiner in %s status", current))
	}

	next := current.Toggled()
	action := entity.AuditActionExaminerSuspend
	if next == entity.ExaminerStatusActive {
		action = entity.AuditActionExaminerReactivate
	}
	return u.setStatus(ctx, actorID, profileID, next, "", action)
}

func (u *examinerLifecycleUsecase) setStatus(ctx context.Context, actorID, profileID uuid.UUID, status entity.ExaminerStatus, reason, action string) (*dto.ExaminerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.findProfile(tx, profileID)
	if err != nil {
		return nil, err
	}

	oldStatus := profile.Status
	profile.Status = status
	profile.SuspendReason = reason

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update examiner profile: %+v", err)
		return nil, err
	}

	// Mirror to the login account so the auth layer sees it too.
	userStatus := entity.UserStatusActive
	if status == entity.ExaminerStatusSuspended {
		userStatus = entity.UserStatusSuspended
	}
	profile.User.Status = userStatus
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "examiner_profile", profile.ID.String(), oldStatus, profile.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	subject := "Your examiner account has been suspended"
	body := fmt.Sprintf("<p>Your examiner account has been suspended.</p><p>%s</p>", reason)
	if status == entity.ExaminerStatusActive {
		subject = "Your examiner account is active again"
		body = "<p>Your examiner account has been reactivated.</p>"
	}
	if err := u.mailService.Send(ctx, profile.User.Email, subject, body); err != nil {
		u.log.Warnf("Failed to send status email to %s: %+v", profile.User.Email, err)
	}

	return converter.ExaminerProfileToResponse(profile), nil
}

// ResendApprovalEmail re-issues the password-setup link for an already
// approved examiner. Unlike the initial approval, a send failure here is
// returned to the caller: resending is the whole operation.
func (u *examinerLifecycleUsecase) ResendApprovalEmail(ctx context.Context, profileID uuid.UUID) error {
	profile, err := u.findProfile(u.db.WithContext(ctx), profileID)
	if err != nil {
		return err
	}

	if !profile.IsApproved() {
		return apperr.Conflict("examiner is not approved yet")
	}

	return u.sendApprovalEmail(ctx, profile)
}

// RequestInfo asks a pending applicant for more information. The emailed
// link carries a signed info-request token so the reply form can
// associate the answer with the profile.
func (u *examinerLifecycleUsecase) RequestInfo(ctx context.Context, actorID, profileID uuid.UUID, req *dto.RequestInfoRequest) error {
	profile, err := u.findProfile(u.db.WithContext(ctx), profileID)
	if err != nil {
		return err
	}

	if profile.Status != entity.ExaminerStatusPending {
		return apperr.Conflict("additional information can only be requested for pending applications")
	}

	token, err := u.jwtService.GenerateInfoRequestToken(profile.User.Email, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to generate info request token: %+v", err)
		return err
	}

	link := fmt.Sprintf("%s/examiner/info-request?token=%s", u.links.PortalBaseURL, token)
	body := fmt.Sprintf(
		"<p>%s</p><p><a href=\"%s\">Provide the requested information</a></p>",
		req.Message, link,
	)
	if err := u.mailService.Send(ctx, profile.User.Email, "Additional information needed", body); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionExaminerStepUpdate, "examiner_profile", profile.ID.String(), req.Message); err != nil {
		return err
	}
	return tx.Commit().Error
}

func (u *examinerLifecycleUsecase) sendApprovalEmail(ctx context.Context, profile *entity.ExaminerProfile) error {
	token, err := u.jwtService.GeneratePasswordSetupToken(profile.User.Email, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to generate password setup token: %+v", err)
		return err
	}

	link := fmt.Sprintf("%s/examiner/setup-password?token=%s", u.links.PortalBaseURL, token)
	body := fmt.Sprintf(
		"<p>Your examiner application has been approved.</p><p><a href=\"%s\">Set your password</a> to activate your account.</p>",
		link,
	)
	return u.mailService.Send(ctx, profile.User.Email, "Welcome aboard", body)
}

func (u *examinerLifecycleUsecase) findProfile(db *gorm.DB, profileID uuid.UUID) (*entity.ExaminerProfile, error) {
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
