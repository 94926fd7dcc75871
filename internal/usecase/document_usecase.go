package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"ime-admin-service/internal/delivery/dto"
	"ime-admin-service/internal/domain/entity"
	"ime-admin-service/internal/domain/repository"
	"ime-admin-service/internal/service"
	"ime-admin-service/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const downloadURLExpiry = 15 * time.Minute

type DocumentUpload struct {
	Category    string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// DocumentUsecase stores examiner documents in object storage and keeps
// a catalog row per upload. Downloads go through short-lived presigned
// URLs; the bucket is never exposed directly.
type DocumentUsecase interface {
	Upload(ctx context.Context, actorID, profileID uuid.UUID, upload *DocumentUpload) (*dto.DocumentResponse, error)
	List(ctx context.Context, profileID uuid.UUID) (*dto.DocumentListResponse, error)
	GetDownloadURL(ctx context.Context, documentID uuid.UUID) (*dto.DocumentURLResponse, error)
}

type documentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	documentRepo repository.DocumentRepository
	profileRepo  repository.ExaminerProfileRepository
	storage      service.StorageService
	auditService service.AuditService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	documentRepo repository.DocumentRepository,
	profileRepo repository.ExaminerProfileRepository,
	storage service.StorageService,
	auditService service.AuditService,
) DocumentUsecase {
	return &documentUsecase{
		db:           db,
		log:          log,
		documentRepo: documentRepo,
		profileRepo:  profileRepo,
		storage:      storage,
		auditService: auditService,
	}
}

func (u *documentUsecase) Upload(ctx context.Context, actorID, profileID uuid.UUID, upload *DocumentUpload) (*dto.DocumentResponse, error) {
	profile, err := u.profileRepo.FindByID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to find examiner profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("examiner not found")
	}

	objectKey := fmt.Sprintf("examiners/%s/%s/%s%s",
		profileID.String(), upload.Category, uuid.New().String(), path.Ext(upload.FileName))

	if err := u.storage.Upload(ctx, objectKey, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doc := &entity.ExaminerDocument{
		ExaminerProfileID: profileID,
		Category:          upload.Category,
		FileName:          upload.FileName,
		ObjectKey:         objectKey,
		ContentType:       upload.ContentType,
		Size:              upload.Size,
	}

	if err := u.documentRepo.Create(tx, doc); err != nil {
		u.log.Warnf("Failed to create document record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionDocumentUpload, "examiner_document", doc.ID.String(), doc.FileName); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return documentToResponse(doc), nil
}

func (u *documentUsecase) List(ctx context.Context, profileID uuid.UUID) (*dto.DocumentListResponse, error) {
	docs, err := u.documentRepo.FindByProfileID(u.db.WithContext(ctx), profileID)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *documentToResponse(&docs[i])
	}

	return &dto.DocumentListResponse{
		Documents: responses,
		Total:     len(docs),
	}, nil
}

func (u *documentUsecase) GetDownloadURL(ctx context.Context, documentID uuid.UUID) (*dto.DocumentURLResponse, error) {
	doc, err := u.documentRepo.FindByID(u.db.WithContext(ctx), documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound("document not found")
	}

	url, err := u.storage.PresignedGetURL(ctx, doc.ObjectKey, downloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &dto.DocumentURLResponse{
		URL:       url,
		ExpiresAt: nowUTC().Add(downloadURLExpiry),
	}, nil
}

func documentToResponse(doc *entity.ExaminerDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:          doc.ID,
		Category:    doc.Category,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		CreatedAt:   doc.CreatedAt,
	}
}
