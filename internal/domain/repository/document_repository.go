package repository

import (
	"context"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentRepository defines persistence operations for per-student document lists.
type DocumentRepository interface {
	// Append adds doc to the end of the student's list, creating the list if needed.
	Append(ctx context.Context, studentID uuid.UUID, doc entity.Document) error
	// FindByStudent returns the student's list; a student without uploads gets an empty set.
	FindByStudent(ctx context.Context, studentID uuid.UUID) (*entity.DocumentSet, error)
}
