package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExperienceModel mirrors the 'experiences' table. Technologies are kept as a jsonb array.
type ExperienceModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Type         string                      `gorm:"type:varchar(16);not null"`
	Title        string                      `gorm:"type:varchar(255);not null"`
	Organisation string                      `gorm:"type:varchar(255);not null"`
	Description  *string                     `gorm:"type:text"`
	StartDate    time.Time                   `gorm:"not null"`
	EndDate      *time.Time
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "experiences"
}
