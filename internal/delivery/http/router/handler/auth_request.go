package handler

import (
	"tnp/internal/domain/entity"
	"tnp/internal/usecase"

	"github.com/google/uuid"
)

// SigninRequest is shared by admin and student sign-in.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=47,password"`
}

func (r *SigninRequest) toInput() *usecase.SigninInput {
	return &usecase.SigninInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdatePasswordRequest changes the caller's password. ID is optional and must
// match the authenticated account when present.
type UpdatePasswordRequest struct {
	ID              *string `json:"id" validate:"omitempty,uuid"`
	CurrentPassword string  `json:"currentPassword" validate:"required"`
	NewPassword     string  `json:"newPassword" validate:"required,min=8,max=16,password"`
}

func (r *UpdatePasswordRequest) toInput(caller *entity.Identity) *usecase.UpdatePasswordInput {
	input := &usecase.UpdatePasswordInput{
		Caller:          caller,
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
	if r.ID != nil {
		// Already checked by the uuid rule.
		id := uuid.MustParse(*r.ID)
		input.AccountID = &id
	}

	return input
}

// SignupAdminRequest registers an admin.
type SignupAdminRequest struct {
	Name     string `json:"name" validate:"required,min=10,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,password"`
}

func (r *SignupAdminRequest) toInput() *usecase.SignupAdminInput {
	return &usecase.SignupAdminInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// SignupStudentRequest registers a student. It is also the body of POST /students.
type SignupStudentRequest struct {
	Name           string   `json:"name" validate:"required,min=10,max=60"`
	Email          string   `json:"email" validate:"required,email"`
	RegNo          string   `json:"regNo" validate:"required,len=10"`
	Password       string   `json:"password" validate:"required,min=8,max=16,password"`
	ProfileImg     *string  `json:"profileImg" validate:"omitempty,url"`
	Branch         string   `json:"branch" validate:"required,oneof=CSE IT CSE_AIML PE ETC ME CE EE"`
	GraduationYear int      `json:"graduationYear" validate:"required,gte=2020,lte=2035"`
	CGPA           *float64 `json:"cgpa" validate:"required,gte=0,lte=10"`
}

func (r *SignupStudentRequest) toInput() *usecase.SignupStudentInput {
	return &usecase.SignupStudentInput{
		Name:           r.Name,
		Email:          r.Email,
		RegNo:          r.RegNo,
		Password:       r.Password,
		ProfileImg:     r.ProfileImg,
		Branch:         entity.Branch(r.Branch),
		GraduationYear: r.GraduationYear,
		CGPA:           *r.CGPA,
	}
}
