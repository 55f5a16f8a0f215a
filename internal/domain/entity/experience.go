package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpType classifies a work-experience record.
type ExpType string

const (
	ExpTypeInternship ExpType = "INTERNSHIP"
	ExpTypeFullTime   ExpType = "FULL_TIME"
	ExpTypePartTime   ExpType = "PART_TIME"
	ExpTypeFreelance  ExpType = "FREELANCE"
	ExpTypeProject    ExpType = "PROJECT"
	ExpTypeResearch   ExpType = "RESEARCH"
	ExpTypeVolunteer  ExpType = "VOLUNTEER"
)

// IsValid checks if the ExpType is a known value.
func (t ExpType) IsValid() bool {
	switch t {
	case ExpTypeInternship, ExpTypeFullTime, ExpTypePartTime, ExpTypeFreelance,
		ExpTypeProject, ExpTypeResearch, ExpTypeVolunteer:
		return true
	default:
		return false
	}
}

// Experience is a work or project experience owned by a student.
type Experience struct {
	ID           uuid.UUID
	StudentID    uuid.UUID
	Type         ExpType
	Title        string
	Organisation string
	Description  *string
	StartDate    time.Time
	EndDate      *time.Time
	Technologies []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasValidPeriod reports whether the end date, when set, is after the start date.
func (e *Experience) HasValidPeriod() bool {
	return e.EndDate == nil || e.EndDate.After(e.StartDate)
}
