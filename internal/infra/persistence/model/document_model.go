package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentModel is one element of the jsonb document list. Its JSON keys are the stored format.
type DocumentModel struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	FileURL    string    `json:"fileUrl"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	IsVerified bool      `json:"isVerified"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// StudentDocumentsModel mirrors the 'student_documents' table: one row per student holding
// every uploaded document in upload order.
type StudentDocumentsModel struct {
	StudentID uuid.UUID                          `gorm:"type:uuid;primary_key"`
	Documents datatypes.JSONSlice[DocumentModel] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentDocumentsModel) TableName() string {
	return "student_documents"
}
