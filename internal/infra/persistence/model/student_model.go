package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(60);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	RegNo          string    `gorm:"column:reg_no;type:varchar(10);not null"`
	PasswordHash   string    `gorm:"column:password;type:varchar(255);not null"`
	ProfileImg     *string   `gorm:"column:profile_img;type:text"`
	Branch         string    `gorm:"type:varchar(16);not null"`
	GraduationYear int       `gorm:"column:graduation_year;not null"`
	CGPA           float64   `gorm:"column:cgpa;type:numeric(4,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Experiences []ExperienceModel      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Documents   *StudentDocumentsModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
