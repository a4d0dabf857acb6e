// Package application defines the application domain entities and services.
package application

import (
	"time"

	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
)

// Status represents the review state of an application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

var validStatuses = map[Status]struct{}{
	StatusPending:  {},
	StatusReviewed: {},
	StatusAccepted: {},
	StatusRejected: {},
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is one of the four review states.
func (s Status) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

// CanTransitionTo reports whether a status change is allowed. Transitions are
/// deliberately unrestricted between valid states: an accepted application can
// be moved back to reviewed. Only the target's validity is checked.
func (s Status) CanTransitionTo(target Status) bool {
	return s.Valid() && target.Valid()
}

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, bool) {
	status := Status(raw)
	return status, status.Valid()
}

// Application records one applicant's interest in one listing. At most one
// application exists per (internship, applicant) pair.
type Application struct {
	ID           string    `json:"id"`
	InternshipID string    `json:"internship_id"`
	ApplicantID  string    `json:"applicant_id"`
	CoverLetter  string    `json:"cover_letter,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations (loaded conditionally)
	Internship *internship.Summary `json:"internship,omitempty"`
	Applicant  *user.PublicProfile `json:"applicant,omitempty"`
}

// ApplyParams contains the caller supplied fields for a new application.
type ApplyParams struct {
	InternshipID string
	CoverLetter  string
}
