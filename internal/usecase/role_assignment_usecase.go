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

// RoleAssignmentUsecase guards organization role changes. The load-bearing
// invariant: an organization has at most one SUPER_ADMIN at a time.
type RoleAssignmentUsecase interface {
	AssignRole(ctx context.Context, actorID uuid.UUID, req *dto.AssignRoleRequest) (*dto.ManagerResponse, error)
	GrantRoleException(ctx context.Context, actorID uuid.UUID, req *dto.GrantRoleExceptionRequest) (*dto.RoleGrantResponse, error)
	InviteManager(ctx context.Context, actorID, organizationID uuid.UUID, req *dto.InviteManagerRequest) (*dto.InvitationResponse, error)
	ListManagers(ctx context.Context, organizationID uuid.UUID) (*dto.ManagerListResponse, error)
}

type roleAssignmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	links        config.LinksConfig
	managerRepo  repository.OrganizationManagerRepository
	roleRepo     repository.OrganizationRoleRepository
	grantRepo    repository.UserRoleGrantRepository
	locationRepo repository.LocationRepository
	jwtService   *jwt.JWTService
	mailService  service.MailService
	auditService service.AuditService
}

func NewRoleAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	links config.LinksConfig,
	managerRepo repository.OrganizationManagerRepository,
	roleRepo repository.OrganizationRoleRepository,
	grantRepo repository.UserRoleGrantRepository,
	locationRepo repository.LocationRepository,
	jwtService *jwt.JWTService,
	mailService service.MailService,
	auditService service.AuditService,
) RoleAssignmentUsecase {
	return &roleAssignmentUsecase{
		db:           db,
		log:          log,
		links:        links,
		managerRepo:  managerRepo,
		roleRepo:     roleRepo,
		grantRepo:    grantRepo,
		locationRepo: locationRepo,
		jwtService:   jwtService,
		mailService:  mailService,
		auditService: auditService,
	}
}

// AssignRole changes a manager's primary role. Assigning the role the
// manager already holds is an idempotent success; assigning SUPER_ADMIN
// while another manager in the organization holds it is a conflict.
func (u *roleAssignmentUsecase) AssignRole(ctx context.Context, actorID uuid.UUID, req *dto.AssignRoleRequest) (*dto.ManagerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	manager, err := u.findManager(tx, req.OrganizationManagerID)
	if err != nil {
		return nil, err
	}

	if err := u.ensureSameOrganization(tx, actorID, manager.OrganizationID); err != nil {
		return nil, err
	}

	role, err := u.findRole(tx, req.OrganizationRoleID)
	if err != nil {
		return nil, err
	}

	if !role.BelongsTo(manager.OrganizationID) {
		return nil, apperr.Permission("role does not belong to the manager's organization")
	}

	if manager.OrganizationRoleID == role.ID {
		// Already holds it; nothing to change.
		return converter.ManagerToResponse(manager), nil
	}

	if role.IsSuperAdmin() {
		holder, err := u.managerRepo.FindOtherHolderOfRole(tx, manager.OrganizationID, role.ID, manager.ID)
		if err != nil {
			u.log.Warnf("Failed to check super admin holder: %+v", err)
			return nil, err
		}
		if holder != nil {
			return nil, apperr.Conflict("organization already has a SUPER_ADMIN")
		}
	}

	oldRoleID := manager.OrganizationRoleID
	manager.OrganizationRoleID = role.ID
	manager.Role = *role

	if err := u.managerRepo.Update(tx, manager); err != nil {
		u.log.Warnf("Failed to update manager role: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRoleAssign, "organization_manager", manager.ID.String(), oldRoleID, role.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ManagerToResponse(manager), nil
}

// GrantRoleException layers a scope-qualified extra role on a manager.
// ORG scope forbids a location; LOCATION scope requires one in the
// manager's organization. An identical grant already on file is a
// conflict.
func (u *roleAssignmentUsecase) GrantRoleException(ctx context.Context, actorID uuid.UUID, req *dto.GrantRoleExceptionRequest) (*dto.RoleGrantResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	manager, err := u.findManager(tx, req.OrganizationManagerID)
	if err != nil {
		return nil, err
	}

	if err := u.ensureSameOrganization(tx, actorID, manager.OrganizationID); err != nil {
		return nil, err
	}

	role, err := u.findRole(tx, req.OrganizationRoleID)
	if err != nil {
		return nil, err
	}

	if !role.BelongsTo(manager.OrganizationID) {
		return nil, apperr.Permission("role does not belong to the manager's organization")
	}

	scope := entity.GrantScope(req.ScopeType)
	switch scope {
	case entity.GrantScopeOrg:
		if req.LocationID != nil {
			return nil, apperr.Validation("ORG scope does not take a location")
		}
	case entity.GrantScopeLocation:
		if req.LocationID == nil {
			return nil, apperr.Validation("LOCATION scope requires a location")
		}
		location, err := u.locationRepo.FindByID(tx, *req.LocationID)
		if err != nil {
			u.log.Warnf("Failed to find location: %+v", err)
			return nil, err
		}
		if location == nil {
			return nil, apperr.NotFound("location not found")
		}
		if location.OrganizationID != manager.OrganizationID {
			return nil, apperr.Permission("location belongs to another organization")
		}
	default:
		return nil, apperr.Validation("invalid scope type")
	}

	grant := &entity.UserRoleGrant{
		OrganizationManagerID: manager.ID,
		OrganizationRoleID:    role.ID,
		ScopeType:             scope,
		LocationID:            req.LocationID,
	}

	existing, err := u.grantRepo.FindIdentical(tx, grant)
	if err != nil {
		u.log.Warnf("Failed to check for identical grant: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("an identical grant already exists")
	}

	if err := u.grantRepo.Create(tx, grant); err != nil {
		u.log.Warnf("Failed to create role grant: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRoleGrant, "user_role_grant", grant.ID.String(), grant); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RoleGrantResponse{
		ID:         grant.ID,
		Role:       role.Name,
		ScopeType:  string(grant.ScopeType),
		LocationID: grant.LocationID,
	}, nil
}

// InviteManager emails a signed invitation link granting the invitee the
// given role when accepted. The send failure propagates: an invitation
// nobody received does not exist.
func (u *roleAssignmentUsecase) InviteManager(ctx context.Context, actorID, organizationID uuid.UUID, req *dto.InviteManagerRequest) (*dto.InvitationResponse, error) {
	role, err := u.findRole(u.db.WithContext(ctx), req.OrganizationRoleID)
	if err != nil {
		return nil, err
	}

	if !role.BelongsTo(organizationID) {
		return nil, apperr.Permission("role does not belong to the organization")
	}

	token, err := u.jwtService.GenerateOrgInvitationToken(req.Email, organizationID, role.ID)
	if err != nil {
		u.log.Warnf("Failed to generate invitation token: %+v", err)
		return nil, err
	}

	link := fmt.Sprintf("%s/organization/join?token=%s", u.links.PortalBaseURL, token)
	body := fmt.Sprintf(
		"<p>You have been invited to join an organization as %s.</p><p><a href=\"%s\">Accept the invitation</a></p>",
		role.Name, link,
	)
	if err := u.mailService.Send(ctx, req.Email, "You're invited", body); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionManagerInvite, "organization", organizationID.String(), req.Email); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.InvitationResponse{
		Email:         req.Email,
		InvitationURL: link,
	}, nil
}

func (u *roleAssignmentUsecase) ListManagers(ctx context.Context, organizationID uuid.UUID) (*dto.ManagerListResponse, error) {
	managers, err := u.managerRepo.FindByOrganizationID(u.db.WithContext(ctx), organizationID)
	if err != nil {
		u.log.Warnf("Failed to list managers: %+v", err)
		return nil, err
	}

	return &dto.ManagerListResponse{
		Managers: converter.ManagersToResponses(managers),
		Total:    len(managers),
	}, nil
}

// ensureSameOrganization rejects cross-tenant access. Actors without a
// manager record are platform operators and act on every organization.
func (u *roleAssignmentUsecase) ensureSameOrganization(db *gorm.DB, actorID, organizationID uuid.UUID) error {
	actor, err := u.managerRepo.FindByUserID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find acting manager: %+v", err)
		return err
	}
	if actor != nil && actor.OrganizationID != organizationID {
		return apperr.Permission("manager belongs to another organization")
	}
	return nil
}

func (u *roleAssignmentUsecase) findManager(db *gorm.DB, managerID uuid.UUID) (*entity.OrganizationManager, error) {
	manager, err := u.managerRepo.FindByID(db, managerID)
	if err != nil {
		u.log.Warnf("Failed to find manager: %+v", err)
		return nil, err
	}
	if manager == nil {
		return nil, apperr.NotFound("organization manager not found")
	}
	return manager, nil
}

func (u *roleAssignmentUsecase) findRole(db *gorm.DB, roleID uuid.UUID) (*entity.OrganizationRole, error) {
	role, err := u.roleRepo.FindByID(db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.NotFound("role not found")
	}
	return role, nil
}
