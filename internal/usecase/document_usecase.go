package usecase

import (
	"context"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// PresignDocumentInput requests an upload slot for a new document.
type PresignDocumentInput struct {
	StudentID   uuid.UUID
	FileName    string
	ContentType string
	Type        entity.DocumentType
}

// AddDocumentInput records an uploaded object against the student.
type AddDocumentInput struct {
	StudentID uuid.UUID
	Title     string
	Key       string
	Type      entity.DocumentType
	FileName  string
	FileSize  int64
	MimeType  string
}

// DocumentUsecase defines document upload operations.
type DocumentUsecase interface {
	PresignUpload(ctx context.Context, input *PresignDocumentInput) (*entity.PresignedUpload, error)
	AddDocument(ctx context.Context, input *AddDocumentInput) (*entity.Document, error)
	ListDocuments(ctx context.Context, studentID uuid.UUID) (*entity.DocumentSet, error)
}
