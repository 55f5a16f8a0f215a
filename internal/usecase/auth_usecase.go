// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupAdminInput defines the data required to register a new admin.
type SignupAdminInput struct {
	Name     string
	Email    string
	Password string
}

// SignupStudentInput defines the data required to register a new student.
type SignupStudentInput struct {
	Name           string
	Email          string
	RegNo          string
	Password       string
	ProfileImg     *string
	Branch         entity.Branch
	GraduationYear int
	CGPA           float64
}

// SigninInput defines the credentials presented at sign-in.
type SigninInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput changes the caller's own password.
type UpdatePasswordInput struct {
	// Caller is the identity decoded from the bearer token.
	Caller *entity.Identity
	// AccountID is the optional id sent in the body; it must match Caller.
	AccountID       *uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AdminAuthOutput returns the admin together with a freshly issued token.
type AdminAuthOutput struct {
	Admin *entity.Admin
	Token string
}

// StudentAuthOutput returns the student together with a freshly issued token.
type StudentAuthOutput struct {
	Student *entity.Student
	Token   string
}

// AdminAuthUsecase defines admin account operations.
type AdminAuthUsecase interface {
	Signup(ctx context.Context, input *SignupAdminInput) (*AdminAuthOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*AdminAuthOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
}

// StudentAuthUsecase defines student account operations.
type StudentAuthUsecase interface {
	Signup(ctx context.Context, input *SignupStudentInput) (*StudentAuthOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*StudentAuthOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
}
