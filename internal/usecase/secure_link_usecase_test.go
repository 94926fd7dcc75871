package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/pkg/apperr"

	"github.com/google/uuid"
)

func bookingExamination() *entity.Examination {
	caseID := uuid.New()
	return &entity.Examination{
		ID:     uuid.New(),
		CaseID: caseID,
		Case: entity.Case{
			ID:         caseID,
			CaseNumber: "IME-1001",
			Claimant: entity.Claimant{
				ID:       uuid.New(),
				FullName: "Casey Claimant",
				Email:    "claimant@example.com",
			},
		},
	}
}

func TestCreateSecureLinkWeekExpiry(t *testing.T) {
	db, mock := newTestDB(t)
	examination := bookingExamination()
	linkRepo := &mockLinkRepo{}
	mail := &mockMailService{}
	jwtService := testJWTService()

	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{examination: examination}, linkRepo, jwtService, mail, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	before := time.Now().UTC()
	resp, err := uc.CreateSecureLink(context.Background(), uuid.New(), &dto.CreateSecureLinkRequest{
		ExaminationID:  examination.ID,
		ExpiresInHours: 168,
	})
	if err != nil {
		t.Fatalf("CreateSecureLink: %v", err)
	}

	if resp.ExpiresIn != "7d" {
		t.Fatalf("168 hours should render as 7d, got %q", resp.ExpiresIn)
	}

	wantExpiry := before.Add(168 * time.Hour)
	if resp.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || resp.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("expires_at drifted from the displayed lifetime: %v", resp.ExpiresAt)
	}

	if linkRepo.created == nil {
		t.Fatal("alias row not persisted")
	}
	if linkRepo.created.Status != entity.SecureLinkStatusPending {
		t.Fatalf("new link should be PENDING, got %s", linkRepo.created.Status)
	}
	if _, err := uuid.Parse(linkRepo.created.Token); err != nil {
		t.Fatalf("stored token should be an opaque UUID, got %q", linkRepo.created.Token)
	}

	// The URL carries the signed JWT plus the stored alias; the alias is
	// never the JWT itself.
	if !strings.Contains(resp.URL, "https://booking.example.com/booking?token=") {
		t.Fatalf("unexpected URL %s", resp.URL)
	}
	if !strings.Contains(resp.URL, "&ref="+linkRepo.created.Token) {
		t.Fatalf("URL should carry the alias ref: %s", resp.URL)
	}
	if strings.Contains(resp.URL, "token="+linkRepo.created.Token+"&") {
		t.Fatal("URL token must be the JWT, not the alias")
	}

	if len(mail.sent) != 1 || mail.sent[0].To != "claimant@example.com" {
		t.Fatalf("claimant email not sent: %+v", mail.sent)
	}
	if !strings.Contains(mail.sent[0].Body, "7d") {
		t.Fatal("email should state the link lifetime")
	}
}

func TestCreateSecureLinkShortExpiry(t *testing.T) {
	db, mock := newTestDB(t)
	examination := bookingExamination()
	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{examination: examination}, &mockLinkRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.CreateSecureLink(context.Background(), uuid.New(), &dto.CreateSecureLinkRequest{
		ExaminationID:  examination.ID,
		ExpiresInHours: 24,
	})
	if err != nil {
		t.Fatalf("CreateSecureLink: %v", err)
	}
	if resp.ExpiresIn != "24h" {
		t.Fatalf("sub-week expiry should render in hours, got %q", resp.ExpiresIn)
	}
}

func TestCreateSecureLinkRequiresClaimantEmail(t *testing.T) {
	db, mock := newTestDB(t)
	examination := bookingExamination()
	examination.Case.Claimant.Email = ""
	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{examination: examination}, &mockLinkRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.CreateSecureLink(context.Background(), uuid.New(), &dto.CreateSecureLinkRequest{
		ExaminationID:  examination.ID,
		ExpiresInHours: 24,
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestConsumeSecureLink(t *testing.T) {
	db, mock := newTestDB(t)
	jwtService := testJWTService()

	signed, err := jwtService.GenerateClaimantBookingToken("claimant@example.com", "case-1", "exam-1", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	link := &entity.ExaminationSecureLink{
		ID:            uuid.New(),
		ExaminationID: uuid.New(),
		Token:         uuid.New().String(),
		ExpiresAt:     time.Now().UTC().Add(time.Hour),
		Status:        entity.SecureLinkStatusPending,
	}
	linkRepo := &mockLinkRepo{link: link}

	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{}, linkRepo, jwtService, &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	claims, err := uc.ConsumeSecureLink(context.Background(), &dto.ConsumeSecureLinkRequest{
		Token: signed,
		Ref:   link.Token,
	})
	if err != nil {
		t.Fatalf("ConsumeSecureLink: %v", err)
	}
	if claims.Email != "claimant@example.com" || claims.CaseID != "case-1" || claims.ExaminationID != "exam-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if linkRepo.updated == nil || linkRepo.updated.Status != entity.SecureLinkStatusUsed {
		t.Fatal("link not marked USED")
	}
}

func TestConsumeSecureLinkAlreadyUsed(t *testing.T) {
	db, mock := newTestDB(t)
	link := &entity.ExaminationSecureLink{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		Status:    entity.SecureLinkStatusUsed,
	}
	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{}, &mockLinkRepo{link: link}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.ConsumeSecureLink(context.Background(), &dto.ConsumeSecureLinkRequest{Token: "whatever", Ref: link.Token})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestConsumeSecureLinkExpiredRowIsStamped(t *testing.T) {
	db, mock := newTestDB(t)
	jwtService := testJWTService()
	signed, err := jwtService.GenerateClaimantBookingToken("claimant@example.com", "case-1", "exam-1", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	link := &entity.ExaminationSecureLink{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
		Status:    entity.SecureLinkStatusPending,
	}
	linkRepo := &mockLinkRepo{link: link}
	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{}, linkRepo, jwtService, &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err = uc.ConsumeSecureLink(context.Background(), &dto.ConsumeSecureLinkRequest{Token: signed, Ref: link.Token})
	if apperr.KindOf(err) != apperr.KindPermission {
		t.Fatalf("expected permission error, got %v", err)
	}
	if linkRepo.updated == nil || linkRepo.updated.Status != entity.SecureLinkStatusExpired {
		t.Fatal("expired row should be stamped EXPIRED")
	}
}

func TestConsumeSecureLinkBadJWT(t *testing.T) {
	db, mock := newTestDB(t)
	link := &entity.ExaminationSecureLink{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		Status:    entity.SecureLinkStatusPending,
	}
	linkRepo := &mockLinkRepo{link: link}
	uc := NewSecureLinkUsecase(db, testLogger(), testLinks(), &mockExaminationRepo{}, linkRepo, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.ConsumeSecureLink(context.Background(), &dto.ConsumeSecureLinkRequest{Token: "not-a-jwt", Ref: link.Token})
	if apperr.KindOf(err) != apperr.KindPermission {
		t.Fatalf("expected permission error, got %v", err)
	}
	if linkRepo.updated != nil {
		t.Fatal("link must stay PENDING when the JWT fails verification")
	}
}
