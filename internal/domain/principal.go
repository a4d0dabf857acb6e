// Package domain holds types shared across the board-api domain packages.
package domain

// Role describes which side of the marketplace a user belongs to. It is a
// fixed attribute chosen at registration and never changes afterwards.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleApplicant Role = "applicant"
)

// Capability names an action a role is entitled to perform.
type Capability string

const (
	CapabilityPostListings     Capability = "post_listings"
	CapabilityApplyToListings  Capability = "apply_to_listings"
	CapabilityReviewApplicants Capability = "review_applicants"
)

var roleCapabilities = map[Role][]Capability{
	RoleEmployer:  {CapabilityPostListings, CapabilityReviewApplicants},
	RoleApplicant: {CapabilityApplyToListings},
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Capabilities returns the actions granted to the role.
func (r Role) Capabilities() []Capability {
	return roleCapabilities[r]
}

// Can reports whether the role grants the given capability.
func (r Role) Can(capability Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == capability {
			return true
		}
	}
	return false
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	return role, role.Valid()
}

// Principal captures the authenticated caller for the lifetime of one
// request. It is resolved once by the auth middleware and carries identity
// only; authorization decisions happen downstream.
type Principal struct {
	UserID string
	Role   Role
	Name   string
	Email  string
}

// Can reports whether the principal's role grants the given capability.
func (p Principal) Can(capability Capability) bool {
	return p.Role.Can(capability)
}
