package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewError_CapturesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	err := NewError(ctx, LayerDomain, ErrorTypeConflict, "duplicate", nil, "test-conflict-001")

	if err.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42", err.RequestID)
	}
	if err.GetCode() != "test-conflict-001" {
		t.Errorf("Code = %q", err.GetCode())
	}
}

func TestGetPlatformError_UnwrapsWrappedErrors(t *testing.T) {
	inner := NewError(context.Background(), LayerRepository, ErrorTypeNotFound, "missing", nil, "test-404")
	wrapped := fmt.Errorf("while loading: %w", inner)

	got := GetPlatformError(wrapped)
	if got == nil || got.Code != "test-404" {
		t.Fatalf("GetPlatformError = %+v", got)
	}

	if GetPlatformError(errors.New("plain")) != nil {
		t.Error("plain errors should not resolve to a PlatformError")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewError(context.Background(), LayerDomain, ErrorTypeForbidden, "denied", nil, "test-403")

	if !IsErrorType(err, ErrorTypeForbidden) {
		t.Error("expected forbidden")
	}
	if IsErrorType(err, ErrorTypeNotFound) {
		t.Error("did not expect not found")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeForbidden) {
		t.Error("plain errors carry no type")
	}
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		status    int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorType("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := ErrorTypeToHTTPStatus(tt.errorType); got != tt.status {
			t.Errorf("ErrorTypeToHTTPStatus(%s) = %d, want %d", tt.errorType, got, tt.status)
		}
	}
}
