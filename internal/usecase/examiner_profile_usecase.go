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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ExaminerProfileUsecase interface {
	CreateExaminer(ctx context.Context, actorID uuid.UUID, req *dto.CreateExaminerRequest) (*dto.ExaminerResponse, error)
	GetExaminer(ctx context.Context, profileID uuid.UUID) (*dto.ExaminerResponse, error)
	GetAllExaminers(ctx context.Context) (*dto.ExaminerListResponse, error)
}

type examinerProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ExaminerProfileRepository
	auditService service.AuditService
}

func NewExaminerProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ExaminerProfileRepository,
	auditService service.AuditService,
) ExaminerProfileUsecase {
	return &examinerProfileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

// CreateExaminer registers a new examiner application in PENDING status.
// The account gets an unguessable placeholder password; the real one is
// set through the password-setup link sent at approval time.
func (u *examinerProfileUsecase) CreateExaminer(ctx context.Context, actorID uuid.UUID, req *dto.CreateExaminerRequest) (*dto.ExaminerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash placeholder password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(placeholder),
		FullName: req.FullName,
		Status:   entity.UserStatusActive,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.Conflict("email already exists")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.ExaminerProfile{
		UserID:        user.ID,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		Biography:     req.Biography,
		Status:        entity.ExaminerStatusPending,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create examiner profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionExaminerCreate, "examiner_profile", profile.ID.String(), profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.ExaminerProfileToResponse(profile), nil
}

func (u *examinerProfileUsecase) GetExaminer(ctx context.Context, profileID uuid.UUID) (*dto.ExaminerResponse, error) {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to find examiner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("examiner not found")
	}

	return converter.ExaminerProfileToResponse(profile), nil
}

func (u *examinerProfileUsecase) GetAllExaminers(ctx context.Context) (*dto.ExaminerListResponse, error) {
	profiles, err := u.profileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list examiner profiles: %+v", err)
		return nil, err
	}

	return &dto.ExaminerListResponse{
		Examiners: converter.ExaminerProfilesToResponses(profiles),
		Total:     len(profiles),
	}, nil
}
