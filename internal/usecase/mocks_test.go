package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ime-admin-service/config"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/internal/service"
	"ime-admin-service/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wraps a sqlmock connection in gorm so transaction begin and
// commit can be asserted while the repositories themselves are mocked.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:                 "session-secret",
		AccessExpiry:           15 * time.Minute,
		RefreshExpiry:          7 * 24 * time.Hour,
		PasswordSetupSecret:    "setup-secret",
		PasswordSetupExpiry:    72 * time.Hour,
		ClaimantApprovalSecret: "claimant-secret",
		OrgInvitationSecret:    "invite-secret",
		OrgInvitationExpiry:    7 * 24 * time.Hour,
		InfoRequestSecret:      "info-secret",
		InfoRequestExpiry:      7 * 24 * time.Hour,
	})
}

func testLinks() config.LinksConfig {
	return config.LinksConfig{
		PortalBaseURL:  "https://portal.example.com",
		BookingBaseURL: "https://booking.example.com",
	}
}

// noopAuditService satisfies service.AuditService without touching the
// database mock.
type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	return nil
}

var _ service.AuditService = noopAuditService{}

var errSMTPDown = errors.New("smtp down")

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// mockMailService records sends and optionally fails them.
type mockMailService struct {
	sent    []sentMail
	sendErr error
}

func (m *mockMailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

var _ service.MailService = (*mockMailService)(nil)

// mockProfileRepo serves one profile and records updates.
type mockProfileRepo struct {
	profile *entity.ExaminerProfile
	updated *entity.ExaminerProfile
}

func (m *mockProfileRepo) Create(db *gorm.DB, profile *entity.ExaminerProfile) error {
	profile.ID = uuid.New()
	return nil
}

func (m *mockProfileRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ExaminerProfile, error) {
	if m.profile != nil && m.profile.ID == id {
		return m.profile, nil
	}
	return nil, nil
}

func (m *mockProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ExaminerProfile, error) {
	if m.profile != nil && m.profile.UserID == userID {
		return m.profile, nil
	}
	return nil, nil
}

func (m *mockProfileRepo) FindAll(db *gorm.DB) ([]entity.ExaminerProfile, error) {
	if m.profile == nil {
		return nil, nil
	}
	return []entity.ExaminerProfile{*m.profile}, nil
}

func (m *mockProfileRepo) Update(db *gorm.DB, profile *entity.ExaminerProfile) error {
	m.updated = profile
	return nil
}

// mockUserRepo records updates; lookups go through the stored user.
type mockUserRepo struct {
	user    *entity.User
	updated *entity.User
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	user.ID = uuid.New()
	return nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.user != nil && m.user.ID == id {
		return m.user, nil
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.user != nil && m.user.Email == email {
		return m.user, nil
	}
	return nil, nil
}

func (m *mockUserRepo) Update(db *gorm.DB, user *entity.User) error {
	m.updated = user
	return nil
}

// mockManagerRepo serves one manager plus an optional competing role
// holder.
type mockManagerRepo struct {
	manager     *entity.OrganizationManager
	actor       *entity.OrganizationManager
	otherHolder *entity.OrganizationManager
	updated     *entity.OrganizationManager
}

func (m *mockManagerRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationManager, error) {
	if m.manager != nil && m.manager.ID == id {
		return m.manager, nil
	}
	return nil, nil
}

func (m *mockManagerRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OrganizationManager, error) {
	if m.actor != nil && m.actor.UserID == userID {
		return m.actor, nil
	}
	if m.manager != nil && m.manager.UserID == userID {
		return m.manager, nil
	}
	return nil, nil
}

func (m *mockManagerRepo) FindByOrganizationID(db *gorm.DB, organizationID uuid.UUID) ([]entity.OrganizationManager, error) {
	if m.manager == nil {
		return nil, nil
	}
	return []entity.OrganizationManager{*m.manager}, nil
}

func (m *mockManagerRepo) FindOtherHolderOfRole(db *gorm.DB, organizationID, roleID, excludeManagerID uuid.UUID) (*entity.OrganizationManager, error) {
	return m.otherHolder, nil
}

func (m *mockManagerRepo) Update(db *gorm.DB, manager *entity.OrganizationManager) error {
	m.updated = manager
	return nil
}

type mockRoleRepo struct {
	roles map[uuid.UUID]*entity.OrganizationRole
}

func (m *mockRoleRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.OrganizationRole, error) {
	return m.roles[id], nil
}

func (m *mockRoleRepo) FindSystemRoleByName(db *gorm.DB, name string) (*entity.OrganizationRole, error) {
	for _, role := range m.roles {
		if role.IsSystemRole && role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

type mockGrantRepo struct {
	existing *entity.UserRoleGrant
	created  *entity.UserRoleGrant
}

func (m *mockGrantRepo) Create(db *gorm.DB, grant *entity.UserRoleGrant) error {
	grant.ID = uuid.New()
	m.created = grant
	return nil
}

func (m *mockGrantRepo) FindIdentical(db *gorm.DB, grant *entity.UserRoleGrant) (*entity.UserRoleGrant, error) {
	return m.existing, nil
}

func (m *mockGrantRepo) FindByManagerID(db *gorm.DB, managerID uuid.UUID) ([]entity.UserRoleGrant, error) {
	return nil, nil
}

type mockLocationRepo struct {
	location *entity.Location
}

func (m *mockLocationRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error) {
	if m.location != nil && m.location.ID == id {
		return m.location, nil
	}
	return nil, nil
}

type mockExaminationRepo struct {
	examination *entity.Examination
}

func (m *mockExaminationRepo) FindByIDWithCase(db *gorm.DB, id uuid.UUID) (*entity.Examination, error) {
	if m.examination != nil && m.examination.ID == id {
		return m.examination, nil
	}
	return nil, nil
}

type mockLinkRepo struct {
	link    *entity.ExaminationSecureLink
	created *entity.ExaminationSecureLink
	updated *entity.ExaminationSecureLink
}

func (m *mockLinkRepo) Create(db *gorm.DB, link *entity.ExaminationSecureLink) error {
	link.ID = uuid.New()
	m.created = link
	return nil
}

func (m *mockLinkRepo) FindByToken(db *gorm.DB, token string) (*entity.ExaminationSecureLink, error) {
	if m.link != nil && m.link.Token == token {
		return m.link, nil
	}
	return nil, nil
}

func (m *mockLinkRepo) Update(db *gorm.DB, link *entity.ExaminationSecureLink) error {
	m.updated = link
	return nil
}
