// Package user provides the user domain model and lookups.
package user

import (
	"context"

	"internhub/board-api/internal/domain"
)

// User models a marketplace account. Accounts are written by the external
// registration flow; this service only reads them.
type User struct {
	ID          string      `json:"id"`
	Subject     string      `json:"-"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	CompanyName string      `json:"company_name,omitempty"`
	Bio         string      `json:"bio,omitempty"`
}

// PublicProfile is the subset of user fields exposed to other users.
type PublicProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Public returns the externally visible projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CompanyName: u.CompanyName,
		Bio:         u.Bio,
	}
}

// Repository defines read access to stored users.
type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindBySubject(ctx context.Context, subject string) (*User, error)
}
