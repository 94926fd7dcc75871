package usecase

import (
	"context"
	"fmt"

	"ime-admin-service/config"
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

// SecureLinkUsecase issues and consumes claimant booking links. A link
// is two artifacts sharing one expiry: a signed JWT carried only in the
// emailed URL, and a stored UUID alias used for status tracking.
type SecureLinkUsecase interface {
	CreateSecureLink(ctx context.Context, actorID uuid.UUID, req *dto.CreateSecureLinkRequest) (*dto.SecureLinkResponse, error)
	ConsumeSecureLink(ctx context.Context, req *dto.ConsumeSecureLinkRequest) (*dto.SecureLinkClaimsResponse, error)
}

type secureLinkUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	links           config.LinksConfig
	examinationRepo repository.ExaminationRepository
	linkRepo        repository.SecureLinkRepository
	jwtService      *jwt.JWTService
	mailService     service.MailService
	auditService    service.AuditService
}

func NewSecureLinkUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	links config.LinksConfig,
	examinationRepo repository.ExaminationRepository,
	linkRepo repository.SecureLinkRepository,
	jwtService *jwt.JWTService,
	mailService service.MailService,
	auditService service.AuditService,
) SecureLinkUsecase {
	return &secureLinkUsecase{
		db:              db,
		log:             log,
		links:           links,
		examinationRepo: examinationRepo,
		linkRepo:        linkRepo,
		jwtService:      jwtService,
		mailService:     mailService,
		auditService:    auditService,
	}
}

// CreateSecureLink issues a booking link for one examination. The
// human-readable expiry string is formatted first and then parsed back
// into the duration used for both the JWT exp and the stored expires_at,
// so the displayed lifetime and the enforced one always agree.
func (u *secureLinkUsecase) CreateSecureLink(ctx context.Context, actorID uuid.UUID, req *dto.CreateSecureLinkRequest) (*dto.SecureLinkResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	examination, err := u.examinationRepo.FindByIDWithCase(tx, req.ExaminationID)
	if err != nil {
		u.log.Warnf("Failed to find examination: %+v", err)
		return nil, err
	}
	if examination == nil {
		return nil, apperr.NotFound("examination not found")
	}

	claimant := examination.Case.Claimant
	if claimant.Email == "" {
		return nil, apperr.NotFound("claimant has no email address")
	}

	expiresIn := jwt.FormatExpiresIn(req.ExpiresInHours)
	duration, err := jwt.ParseExpiresIn(expiresIn)
	if err != nil {
		return nil, apperr.Validation("invalid expiry")
	}
	expiresAt := nowUTC().Add(duration)

	signed, err := u.jwtService.GenerateClaimantBookingToken(
		claimant.Email,
		examination.CaseID.String(),
		examination.ID.String(),
		duration,
	)
	if err != nil {
		u.log.Warnf("Failed to sign booking token: %+v", err)
		return nil, err
	}

	link := &entity.ExaminationSecureLink{
		ExaminationID: examination.ID,
		Token:         uuid.New().String(),
		ExpiresAt:     expiresAt,
		Status:        entity.SecureLinkStatusPending,
	}

	if err := u.linkRepo.Create(tx, link); err != nil {
		u.log.Warnf("Failed to create secure link: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionSecureLinkCreate, "examination_secure_link", link.ID.String(), link); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	url := fmt.Sprintf("%s/booking?token=%s&ref=%s", u.links.BookingBaseURL, signed, link.Token)

	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Please <a href=\"%s\">schedule your examination</a>. This link expires in %s.</p>",
		claimant.FullName, url, expiresIn,
	)
	if err := u.mailService.Send(ctx, claimant.Email, "Schedule your examination", body); err != nil {
		u.log.Warnf("Failed to send secure link email to %s: %+v", claimant.Email, err)
	}

	return &dto.SecureLinkResponse{
		URL:       url,
		Token:     link.Token,
		ExpiresAt: expiresAt,
		ExpiresIn: expiresIn,
	}, nil
}

// ConsumeSecureLink verifies a presented link and marks its alias row
// USED. Expired rows are stamped EXPIRED on the way out; a link can be
// consumed exactly once.
func (u *secureLinkUsecase) ConsumeSecureLink(ctx context.Context, req *dto.ConsumeSecureLinkRequest) (*dto.SecureLinkClaimsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	link, err := u.linkRepo.FindByToken(tx, req.Ref)
	if err != nil {
		u.log.Warnf("Failed to find secure link: %+v", err)
		return nil, err
	}
	if link == nil {
		return nil, apperr.NotFound("link not found")
	}

	if link.Status == entity.SecureLinkStatusUsed {
		return nil, apperr.Conflict("link has already been used")
	}

	if link.Status == entity.SecureLinkStatusExpired || link.IsExpired(nowUTC()) {
		if link.Status != entity.SecureLinkStatusExpired {
			link.Status = entity.SecureLinkStatusExpired
			if err := u.linkRepo.Update(tx, link); err != nil {
				u.log.Warnf("Failed to mark link expired: %+v", err)
				return nil, err
			}
			if err := tx.Commit().Error; err != nil {
				u.log.Warnf("Failed commit transaction: %+v", err)
				return nil, err
			}
		}
		return nil, apperr.Permission("link has expired")
	}

	claims, err := u.jwtService.ValidateClaimantBookingToken(req.Token)
	if err != nil {
		return nil, apperr.Permission("invalid or expired token")
	}

	link.Status = entity.SecureLinkStatusUsed
	if err := u.linkRepo.Update(tx, link); err != nil {
		u.log.Warnf("Failed to mark link used: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionSecureLinkConsume, "examination_secure_link", link.ID.String(), entity.SecureLinkStatusPending, link.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SecureLinkClaimsResponse{
		Email:         claims.Email,
		CaseID:        claims.CaseID,
		ExaminationID: claims.ExaminationID,
	}, nil
}
