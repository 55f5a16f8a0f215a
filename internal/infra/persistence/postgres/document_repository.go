package postgres

import (
	"context"
	"time"

	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRepository stores each student's documents as a single jsonb array.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// Append inserts the student's row or concatenates doc onto the existing array in one statement.
func (repo *documentRepository) Append(ctx context.Context, studentID uuid.UUID, doc entity.Document) error {
	now := time.Now()
	row := &model.StudentDocumentsModel{
		StudentID: studentID,
		Documents: datatypes.JSONSlice[model.DocumentModel]{fromDocumentDomain(doc)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"documents":  gorm.Expr("student_documents.documents || EXCLUDED.documents"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStudentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append document")
	}

	return nil
}

// FindByStudent returns the student's documents; a student without a row gets an empty set.
func (repo *documentRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) (*entity.DocumentSet, error) {
	var row model.StudentDocumentsModel

	if err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.DocumentSet{StudentID: studentID, Documents: []entity.Document{}}, nil
		}

		return nil, errors.Wrap(err, "failed to find documents by student")
	}

	return toDocumentSetDomain(&row), nil
}

// --- Mapper Functions ---

func toDocumentSetDomain(data *model.StudentDocumentsModel) *entity.DocumentSet {
	docs := make([]entity.Document, 0, len(data.Documents))
	for _, d := range data.Documents {
		docs = append(docs, toDocumentDomain(d))
	}

	return &entity.DocumentSet{
		StudentID: data.StudentID,
		Documents: docs,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDocumentDomain(data model.DocumentModel) entity.Document {
	return entity.Document{
		ID:         data.ID,
		Title:      data.Title,
		Type:       entity.DocumentType(data.Type),
		Key:        data.Key,
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileSize:   data.FileSize,
		MimeType:   data.MimeType,
		IsVerified: data.IsVerified,
		UploadedAt: data.UploadedAt,
	}
}

func fromDocumentDomain(data entity.Document) model.DocumentModel {
	return model.DocumentModel{
		ID:         data.ID,
		Title:      data.Title,
		Type:       string(data.Type),
		Key:        data.Key,
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileSize:   data.FileSize,
		MimeType:   data.MimeType,
		IsVerified: data.IsVerified,
		UploadedAt: data.UploadedAt,
	}
}
