package entities

import "time"

// Application models the persisted application record. The composite unique
// index on (internship_id, applicant_id) enforces the one-application-per-
// pair invariant at the storage layer, closing the race between concurrent
// identical submissions.
//
// There is deliberately no foreign key constraint from applications to
// internships: deleting a listing retains its applications, and the dangling
// reference surfaces as a not-found listing on later reads.
type Application struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	InternshipID string `gorm:"type:uuid;not null;uniqueIndex:idx_application_pair;index"`
	ApplicantID  string `gorm:"type:uuid;not null;uniqueIndex:idx_application_pair"`
	Applicant    *User  `gorm:"foreignKey:ApplicantID"`
	CoverLetter  string `gorm:"type:text"`
	Status       string `gorm:"size:32;not null;default:pending;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Application) TableName() string {
	return "applications"
}
