package usecase

import (
	"context"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// ListStudentsInput selects one page of the student listing. Page is 1-indexed.
type ListStudentsInput struct {
	Page  int
	Limit int
}

// ListStudentsOutput is one page of students plus the values used to compute it.
type ListStudentsOutput struct {
	Students []*entity.Student
	Total    int64
	Page     int
	Limit    int
}

// StudentUsecase defines student profile operations.
type StudentUsecase interface {
	CreateStudent(ctx context.Context, input *SignupStudentInput) (*entity.Student, error)
	ListStudents(ctx context.Context, input *ListStudentsInput) (*ListStudentsOutput, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error)
}
