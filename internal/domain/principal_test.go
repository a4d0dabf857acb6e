package domain_test

import (
	"testing"

	"internhub/board-api/internal/domain"
)

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		expected bool
	}{
		{"employer is valid", domain.RoleEmployer, true},
		{"applicant is valid", domain.RoleApplicant, true},
		{"empty is invalid", domain.Role(""), false},
		{"admin is invalid", domain.Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.expected {
				t.Errorf("Role.Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRole_Can(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		capability domain.Capability
		expected   bool
	}{
		{"employer posts listings", domain.RoleEmployer, domain.CapabilityPostListings, true},
		{"employer reviews applicants", domain.RoleEmployer, domain.CapabilityReviewApplicants, true},
		{"employer cannot apply", domain.RoleEmployer, domain.CapabilityApplyToListings, false},
		{"applicant applies", domain.RoleApplicant, domain.CapabilityApplyToListings, true},
		{"applicant cannot post", domain.RoleApplicant, domain.CapabilityPostListings, false},
		{"applicant cannot review", domain.RoleApplicant, domain.CapabilityReviewApplicants, false},
		{"unknown role has nothing", domain.Role("admin"), domain.CapabilityPostListings, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Can(tt.capability); got != tt.expected {
				t.Errorf("Role.Can(%s) = %v, want %v", tt.capability, got, tt.expected)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := domain.ParseRole("employer"); !ok || role != domain.RoleEmployer {
		t.Errorf("ParseRole(employer) = (%v, %v)", role, ok)
	}
	if _, ok := domain.ParseRole("superuser"); ok {
		t.Error("ParseRole(superuser) should not be ok")
	}
}

func TestPrincipal_Can(t *testing.T) {
	principal := domain.Principal{UserID: "u-1", Role: domain.RoleApplicant}
	if !principal.Can(domain.CapabilityApplyToListings) {
		t.Error("applicant principal should be able to apply")
	}
	if principal.Can(domain.CapabilityReviewApplicants) {
		t.Error("applicant principal should not review applicants")
	}
}
