package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   ErrorCode
		wantStatus int
	}{
		{"invalid ref", InvalidRef("acc1"), ErrCodeInvalidRef, http.StatusBadRequest},
		{"not found", NotFound("account", "acc9"), ErrCodeNotFound, http.StatusNotFound},
		{"unknown permission", UnknownPermission("can_fly", "account"), ErrCodeUnknownPermission, http.StatusNotFound},
		{"recursion limit", RecursionLimit(32), ErrCodeRecursionLimit, http.StatusInternalServerError},
		{"unauthorized", Unauthorized(""), ErrCodeUnauthorized, http.StatusUnauthorized},
		{"validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.wantCode {
				t.Errorf("Code = %s, want %s", tc.err.Code, tc.wantCode)
			}
			if tc.err.HTTPStatus != tc.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tc.err.HTTPStatus, tc.wantStatus)
			}
			if tc.err.Error() == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("loan", "loan1")
	wrapped := fmt.Errorf("lookup failed: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError did not unwrap AppError")
	}
	if got.Code != ErrCodeNotFound {
		t.Errorf("Code = %s, want %s", got.Code, ErrCodeNotFound)
	}

	if _, ok := AsAppError(fmt.Errorf("plain error")); ok {
		t.Error("AsAppError matched a plain error")
	}
}

func TestToResponse(t *testing.T) {
	resp := UnknownPermission("can_teleport", "branch").ToResponse()
	if resp.Error.Code != ErrCodeUnknownPermission {
		t.Errorf("Code = %s, want %s", resp.Error.Code, ErrCodeUnknownPermission)
	}
	if resp.Error.Details["permission"] != "can_teleport" {
		t.Errorf("Details[permission] = %v, want can_teleport", resp.Error.Details["permission"])
	}
}
