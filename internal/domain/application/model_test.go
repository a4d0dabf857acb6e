package application_test

import (
	"testing"

	"internhub/board-api/internal/domain/application"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		name     string
		status   application.Status
		expected bool
	}{
		{"pending is valid", application.StatusPending, true},
		{"reviewed is valid", application.StatusReviewed, true},
		{"accepted is valid", application.StatusAccepted, true},
		{"rejected is valid", application.StatusRejected, true},
		{"empty is invalid", application.Status(""), false},
		{"unknown is invalid", application.Status("archived"), false},
		{"case sensitive", application.Status("Pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.expected {
				t.Errorf("Status.Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	valid := []application.Status{
		application.StatusPending,
		application.StatusReviewed,
		application.StatusAccepted,
		application.StatusRejected,
	}

	// Any valid state may move to any valid state, including backwards and
	// to itself.
	for _, from := range valid {
		for _, to := range valid {
			if !from.CanTransitionTo(to) {
				t.Errorf("CanTransitionTo(%s -> %s) = false, want true", from, to)
			}
		}
	}

	if application.StatusPending.CanTransitionTo(application.Status("archived")) {
		t.Error("transition to unknown status should be refused")
	}
	if application.Status("archived").CanTransitionTo(application.StatusPending) {
		t.Error("transition from unknown status should be refused")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected application.Status
		ok       bool
	}{
		{"pending parses", "pending", application.StatusPending, true},
		{"accepted parses", "accepted", application.StatusAccepted, true},
		{"unknown rejected", "on-hold", application.Status("on-hold"), false},
		{"empty rejected", "", application.Status(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := application.ParseStatus(tt.raw)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseStatus(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
