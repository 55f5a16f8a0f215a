package entity

import (
	"time"

	"github.com/google/uuid"
)

// Branch is the academic branch a student is enrolled in.
type Branch string

const (
	BranchCSE     Branch = "CSE"
	BranchIT      Branch = "IT"
	BranchCSEAIML Branch = "CSE_AIML"
	BranchPE      Branch = "PE"
	BranchETC     Branch = "ETC"
	BranchME      Branch = "ME"
	BranchCE      Branch = "CE"
	BranchEE      Branch = "EE"
)

// IsValid checks if the Branch is a known value.
func (b Branch) IsValid() bool {
	switch b {
	case BranchCSE, BranchIT, BranchCSEAIML, BranchPE, BranchETC, BranchME, BranchCE, BranchEE:
		return true
	default:
		return false
	}
}

// Student is a student account together with its academic profile.
type Student struct {
	ID             uuid.UUID // Primary key, generated by the database.
	Name           string    // Full name.
	Email          string    // Unique login identifier.
	RegNo          string    // University registration number.
	PasswordHash   string    // bcrypt digest, never serialised.
	ProfileImg     *string   // Optional avatar URL.
	Branch         Branch
	GraduationYear int
	CGPA           float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
