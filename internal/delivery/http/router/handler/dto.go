package handler

import (
	"time"

	"tnp/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminResponse is the public view of an admin account.
type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentResponse is the public view of a student account.
type StudentResponse struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	RegNo          string        `json:"regNo"`
	ProfileImg     *string       `json:"profileImg"`
	Branch         entity.Branch `json:"branch"`
	GraduationYear int           `json:"graduationYear"`
	CGPA           float64       `json:"cgpa"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// DocumentResponse is a stored document.
type DocumentResponse struct {
	ID         uuid.UUID           `json:"id"`
	Title      string              `json:"title"`
	Type       entity.DocumentType `json:"type"`
	Key        string              `json:"key"`
	FileURL    string              `json:"fileUrl"`
	FileName   string              `json:"fileName"`
	FileSize   int64               `json:"fileSize"`
	MimeType   string              `json:"mimeType"`
	IsVerified bool                `json:"isVerified"`
	UploadedAt time.Time           `json:"uploadedAt"`
}

// PresignResponse describes an upload slot.
type PresignResponse struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	FileURL   string    `json:"fileUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExperienceResponse is a stored experience record.
type ExperienceResponse struct {
	ID           uuid.UUID      `json:"id"`
	StudentID    uuid.UUID      `json:"studentId"`
	Type         entity.ExpType `json:"type"`
	Title        string         `json:"title"`
	Organisation string         `json:"organisation"`
	Description  *string        `json:"description"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      *time.Time     `json:"endDate"`
	Technologies []string       `json:"technologies"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// --- Mapper Functions ---

func toAdminResponse(admin *entity.Admin) *AdminResponse {
	if admin == nil {
		return nil
	}

	return &AdminResponse{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

func toStudentResponse(student *entity.Student) *StudentResponse {
	if student == nil {
		return nil
	}

	return &StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		Email:          student.Email,
		RegNo:          student.RegNo,
		ProfileImg:     student.ProfileImg,
		Branch:         student.Branch,
		GraduationYear: student.GraduationYear,
		CGPA:           student.CGPA,
		CreatedAt:      student.CreatedAt,
		UpdatedAt:      student.UpdatedAt,
	}
}

func toStudentResponses(students []*entity.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}

	return out
}

func toDocumentResponse(doc *entity.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		Type:       doc.Type,
		Key:        doc.Key,
		FileURL:    doc.FileURL,
		FileName:   doc.FileName,
		FileSize:   doc.FileSize,
		MimeType:   doc.MimeType,
		IsVerified: doc.IsVerified,
		UploadedAt: doc.UploadedAt,
	}
}

func toExperienceResponse(exp *entity.Experience) *ExperienceResponse {
	technologies := exp.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return &ExperienceResponse{
		ID:           exp.ID,
		StudentID:    exp.StudentID,
		Type:         exp.Type,
		Title:        exp.Title,
		Organisation: exp.Organisation,
		Description:  exp.Description,
		StartDate:    exp.StartDate,
		EndDate:      exp.EndDate,
		Technologies: technologies,
		CreatedAt:    exp.CreatedAt,
		UpdatedAt:    exp.UpdatedAt,
	}
}
