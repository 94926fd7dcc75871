package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/pkg/apperr"

	"github.com/google/uuid"
)

func lifecycleProfile(status entity.ExaminerStatus) *entity.ExaminerProfile {
	userID := uuid.New()
	return &entity.ExaminerProfile{
		ID:     uuid.New(),
		UserID: userID,
		Status: status,
		User: entity.User{
			ID:       userID,
			Email:    "examiner@example.com",
			FullName: "Dr. Example",
			Status:   entity.UserStatusActive,
		},
	}
}

func TestApprovePendingExaminer(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusPending)
	profileRepo := &mockProfileRepo{profile: profile}
	mail := &mockMailService{}

	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), profileRepo, &mockUserRepo{}, testJWTService(), mail, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	actorID := uuid.New()
	resp, err := uc.Approve(context.Background(), actorID, profile.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if resp.Status != string(entity.ExaminerStatusAccepted) {
		t.Fatalf("expected ACCEPTED, got %s", resp.Status)
	}
	if resp.ApprovedAt == nil || resp.ApprovedBy == nil || *resp.ApprovedBy != actorID {
		t.Fatalf("approval stamp missing: %+v", resp)
	}
	if len(mail.sent) != 1 || mail.sent[0].To != "examiner@example.com" {
		t.Fatalf("expected approval email, got %+v", mail.sent)
	}
	if !strings.Contains(mail.sent[0].Body, "setup-password?token=") {
		t.Fatal("approval email should carry the password-setup link")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveAlreadyApprovedExaminer(t *testing.T) {
	for _, status := range []entity.ExaminerStatus{entity.ExaminerStatusAccepted, entity.ExaminerStatusActive, entity.ExaminerStatusSuspended} {
		db, mock := newTestDB(t)
		profile := lifecycleProfile(status)
		uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := uc.Approve(context.Background(), uuid.New(), profile.ID)
		if apperr.KindOf(err) != apperr.KindConflict {
			t.Fatalf("%s: expected conflict, got %v", status, err)
		}
		if apperr.MessageOf(err, "") != "examiner is already approved" {
			t.Fatalf("%s: unexpected message %q", status, apperr.MessageOf(err, ""))
		}
	}
}

func TestApproveRejectedExaminer(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusRejected)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.Approve(context.Background(), uuid.New(), profile.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if apperr.MessageOf(err, "") != "cannot approve a rejected examiner" {
		t.Fatalf("unexpected message %q", apperr.MessageOf(err, ""))
	}
}

func TestApproveSucceedsWhenEmailFails(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusPending)
	mail := &mockMailService{sendErr: errors.New("smtp down")}
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), mail, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.Approve(context.Background(), uuid.New(), profile.ID)
	if err != nil {
		t.Fatalf("approval should survive a failed email: %v", err)
	}
	if resp.Status != string(entity.ExaminerStatusAccepted) {
		t.Fatalf("expected ACCEPTED, got %s", resp.Status)
	}
}

func TestResendApprovalEmailPropagatesFailure(t *testing.T) {
	db, _ := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusAccepted)
	mail := &mockMailService{sendErr: errors.New("smtp down")}
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), mail, noopAuditService{})

	if err := uc.ResendApprovalEmail(context.Background(), profile.ID); err == nil {
		t.Fatal("resend should fail when the email cannot be sent")
	}
}

func TestResendApprovalEmailRequiresApproval(t *testing.T) {
	db, _ := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusPending)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	err := uc.ResendApprovalEmail(context.Background(), profile.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRejectNonPendingExaminer(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusActive)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.Reject(context.Background(), uuid.New(), profile.ID, &dto.RejectExaminerRequest{Reason: "no"})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSuspendMirrorsUserStatus(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusActive)
	userRepo := &mockUserRepo{}
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, userRepo, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := dto.SuspendExaminerRequest{Reason: "unresponsive"}
	resp, err := uc.Suspend(context.Background(), uuid.New(), profile.ID, &req)
	if err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if resp.Status != string(entity.ExaminerStatusSuspended) {
		t.Fatalf("expected SUSPENDED, got %s", resp.Status)
	}
	if userRepo.updated == nil || userRepo.updated.Status != entity.UserStatusSuspended {
		t.Fatal("user status not mirrored to SUSPENDED")
	}
}

func TestToggleStatusFlipsActive(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusActive)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.ToggleStatus(context.Background(), uuid.New(), profile.ID)
	if err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	if resp.Status != string(entity.ExaminerStatusSuspended) {
		t.Fatalf("expected SUSPENDED, got %s", resp.Status)
	}
}

func TestToggleStatusRejectsPending(t *testing.T) {
	db, _ := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusPending)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	_, err := uc.ToggleStatus(context.Background(), uuid.New(), profile.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !strings.Contains(apperr.MessageOf(err, ""), "PENDING") {
		t.Fatalf("error should name the blocking status: %q", apperr.MessageOf(err, ""))
	}
}

func TestRequestInfoOnlyForPending(t *testing.T) {
	db, _ := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusActive)
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), &mockMailService{}, noopAuditService{})

	req := dto.RequestInfoRequest{Message: "please send your license"}
	err := uc.RequestInfo(context.Background(), uuid.New(), profile.ID, &req)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRequestInfoSendsTokenLink(t *testing.T) {
	db, mock := newTestDB(t)
	profile := lifecycleProfile(entity.ExaminerStatusPending)
	mail := &mockMailService{}
	uc := NewExaminerLifecycleUsecase(db, testLogger(), testLinks(), &mockProfileRepo{profile: profile}, &mockUserRepo{}, testJWTService(), mail, noopAuditService{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := dto.RequestInfoRequest{Message: "please send your license"}
	if err := uc.RequestInfo(context.Background(), uuid.New(), profile.ID, &req); err != nil {
		t.Fatalf("RequestInfo: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0].Body, "info-request?token=") {
		t.Fatal("email should carry the info-request link")
	}
	if !strings.Contains(mail.sent[0].Body, "please send your license") {
		t.Fatal("email should carry the admin's message")
	}
}
