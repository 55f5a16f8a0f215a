package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies an uploaded student document.
type DocumentType string

const (
	DocumentTypeResume      DocumentType = "RESUME"
	DocumentTypeMarksheet   DocumentType = "MARKSHEET"
	DocumentTypeCertificate DocumentType = "CERTIFICATE"
	DocumentTypeIDProof     DocumentType = "ID_PROOF"
	DocumentTypeOther       DocumentType = "OTHER"
)

// IsValid checks if the DocumentType is a known value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeResume, DocumentTypeMarksheet, DocumentTypeCertificate, DocumentTypeIDProof, DocumentTypeOther:
		return true
	default:
		return false
	}
}

// Document is the metadata of a file uploaded to object storage.
type Document struct {
	ID         uuid.UUID
	Title      string
	Type       DocumentType
	Key        string
	FileURL    string
	FileName   string
	FileSize   int64
	MimeType   string
	IsVerified bool
	UploadedAt time.Time
}

// DocumentSet is the ordered list of documents a student has uploaded.
type DocumentSet struct {
	StudentID uuid.UUID
	Documents []Document
	UpdatedAt time.Time
}

// PresignedUpload describes a time-limited upload slot in object storage.
type PresignedUpload struct {
	UploadURL string
	Key       string
	FileURL   string
	ExpiresAt time.Time
}
