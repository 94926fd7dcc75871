package usecase

import (
	"context"
	"time"

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

// AvailabilityUsecase manages the weekly recurring schedule and the
// per-date overrides of one examiner.
type AvailabilityUsecase interface {
	SaveWeeklyHours(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SaveWeeklyHoursRequest) (*dto.WeeklyHoursResponse, error)
	GetWeeklyHours(ctx context.Context, profileID uuid.UUID) (*dto.WeeklyHoursResponse, error)
	SaveOverrideHours(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SaveOverrideHoursRequest) (*dto.OverrideHoursResponse, error)
	GetOverrideHours(ctx context.Context, profileID uuid.UUID) (*dto.OverrideHoursListResponse, error)
	DeleteOverrideHours(ctx context.Context, actorID, profileID uuid.UUID, date string) error
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.ExaminerProfileRepository
	weeklyRepo   repository.WeeklyHoursRepository
	overrideRepo repository.OverrideHoursRepository
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ExaminerProfileRepository,
	weeklyRepo repository.WeeklyHoursRepository,
	overrideRepo repository.OverrideHoursRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		weeklyRepo:   weeklyRepo,
		overrideRepo: overrideRepo,
		auditService: auditService,
	}
}

// SaveWeeklyHours replaces the stored weekly rows with the submitted
// day-keyed schedule. Days absent from the request store nothing; the
// read path fills them from defaults.
func (u *availabilityUsecase) SaveWeeklyHours(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SaveWeeklyHoursRequest) (*dto.WeeklyHoursResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureProfile(tx, profileID); err != nil {
		return nil, err
	}

	records := converter.WeeklyScheduleToRecords(profileID, req.Schedule)
	if err := u.weeklyRepo.ReplaceForProfile(tx, profileID, records); err != nil {
		u.log.Warnf("Failed to replace weekly hours: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAvailabilityUpdate, "weekly_hours", profileID.String(), nil, req.Schedule); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.WeeklyHoursResponse{
		Schedule: converter.RecordsToWeeklySchedule(records),
	}, nil
}

// GetWeeklyHours always returns a complete 7-day schedule: stored rows
// where they exist, defaults everywhere else.
func (u *availabilityUsecase) GetWeeklyHours(ctx context.Context, profileID uuid.UUID) (*dto.WeeklyHoursResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.ensureProfile(db, profileID); err != nil {
		return nil, err
	}

	records, err := u.weeklyRepo.FindByProfileID(db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find weekly hours: %+v", err)
		return nil, err
	}

	return &dto.WeeklyHoursResponse{
		Schedule: converter.RecordsToWeeklySchedule(records),
	}, nil
}

// SaveOverrideHours upserts the override for one calendar date: at most
// one override row exists per (profile, date).
func (u *availabilityUsecase) SaveOverrideHours(ctx context.Context, actorID, profileID uuid.UUID, req *dto.SaveOverrideHoursRequest) (*dto.OverrideHoursResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date format, use YYYY-MM-DD")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureProfile(tx, profileID); err != nil {
		return nil, err
	}

	existing, err := u.overrideRepo.FindByProfileIDAndDate(tx, profileID, date)
	if err != nil {
		u.log.Warnf("Failed to find override hours: %+v", err)
		return nil, err
	}

	slots := make(entity.TimeSlots, len(req.TimeSlots))
	for i, s := range req.TimeSlots {
		slots[i] = entity.TimeSlot{StartTime: s.StartTime, EndTime: s.EndTime}
	}

	var record *entity.OverrideHours
	if existing != nil {
		existing.Enabled = req.Enabled
		existing.TimeSlots = slots
		if err := u.overrideRepo.Update(tx, existing); err != nil {
			u.log.Warnf("Failed to update override hours: %+v", err)
			return nil, err
		}
		record = existing
	} else {
		record = &entity.OverrideHours{
			ExaminerProfileID: profileID,
			Date:              date,
			Enabled:           req.Enabled,
			TimeSlots:         slots,
		}
		if err := u.overrideRepo.Create(tx, record); err != nil {
			u.log.Warnf("Failed to create override hours: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionOverrideUpdate, "override_hours", profileID.String(), nil, req); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	responses := converter.OverrideHoursToResponses([]entity.OverrideHours{*record})
	return &responses[0], nil
}

func (u *availabilityUsecase) GetOverrideHours(ctx context.Context, profileID uuid.UUID) (*dto.OverrideHoursListResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.ensureProfile(db, profileID); err != nil {
		return nil, err
	}

	records, err := u.overrideRepo.FindByProfileID(db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find override hours: %+v", err)
		return nil, err
	}

	return &dto.OverrideHoursListResponse{
		Overrides: converter.OverrideHoursToResponses(records),
		Total:     len(records),
	}, nil
}

func (u *availabilityUsecase) DeleteOverrideHours(ctx context.Context, actorID, profileID uuid.UUID, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return apperr.Validation("invalid date format, use YYYY-MM-DD")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ensureProfile(tx, profileID); err != nil {
		return err
	}

	deleted, err := u.overrideRepo.DeleteByProfileIDAndDate(tx, profileID, date)
	if err != nil {
		u.log.Warnf("Failed to delete override hours: %+v", err)
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("no override exists for that date")
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionOverrideUpdate, "override_hours", profileID.String(), dateStr); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *availabilityUsecase) ensureProfile(db *gorm.DB, profileID uuid.UUID) error {
	profile, err := u.profileRepo.FindByID(db, profileID)
	if err != nil {
		u.log.Warnf("Failed to find examiner profile: %+v", err)
		return err
	}
	if profile == nil {
		return apperr.NotFound("examiner not found")
	}
	return nil
}
