package repository

import (
	"errors"

	"ime-admin-service/internal/domain/entity"
	domainRepo "ime-admin-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, doc *entity.ExaminerDocument) error {
	return db.Create(doc).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ExaminerDocument, error) {
	var doc entity.ExaminerDocument
	err := db.Where("id = ?", id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindByProfileID(db *gorm.DB, profileID uuid.UUID) ([]entity.ExaminerDocument, error) {
	var docs []entity.ExaminerDocument
	err := db.Where("examiner_profile_id = ?", profileID).Order("created_at desc").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
