package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAPIValidation, "username already taken")

	if err.Code != ErrCodeAPIValidation {
		t.Errorf("expected code %s, got %s", ErrCodeAPIValidation, err.Code)
	}

	if err.Message != "username already taken" {
		t.Errorf("expected message 'username already taken', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeTransport, "cannot connect to the server", cause)

	if err.Code != ErrCodeTransport {
		t.Errorf("expected code %s, got %s", ErrCodeTransport, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantCode string
		wantMsg  string
	}{
		{
			name:     "validation error",
			err:      NewValidationError("invalid credentials"),
			wantCode: "API-001",
			wantMsg:  "invalid credentials",
		},
		{
			name:     "decode error carries status",
			err:      NewDecodeError(502),
			wantCode: "API-002",
			wantMsg:  "502",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeStoreRead, "read failed", fmt.Errorf("permission denied")),
			wantCode: "STORE-001",
			wantMsg:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestTransportErrorSuggestions(t *testing.T) {
	err := NewTransportError(fmt.Errorf("dial tcp: connection refused"))

	msg := err.Error()
	if !strings.Contains(msg, "server is running") {
		t.Errorf("transport error should point at server availability, got: %s", msg)
	}
	if !strings.Contains(msg, "base URL") {
		t.Errorf("transport error should point at the base URL, got: %s", msg)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantValid     bool
		wantDecode    bool
		wantTransport bool
	}{
		{"validation", NewValidationError("nope"), true, false, false},
		{"decode", NewDecodeError(500), false, true, false},
		{"transport", NewTransportError(fmt.Errorf("refused")), false, false, true},
		{"wrapped transport", fmt.Errorf("op: %w", NewTransportError(fmt.Errorf("refused"))), false, false, true},
		{"plain error", fmt.Errorf("boring"), false, false, false},
		{"nil-ish code", New(ErrCodeStoreWrite, "x"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.wantValid {
				t.Errorf("IsValidation() = %v, want %v", got, tt.wantValid)
			}
			if got := IsDecode(tt.err); got != tt.wantDecode {
				t.Errorf("IsDecode() = %v, want %v", got, tt.wantDecode)
			}
			if got := IsTransport(tt.err); got != tt.wantTransport {
				t.Errorf("IsTransport() = %v, want %v", got, tt.wantTransport)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithSuggestion("check the yaml syntax").
		WithSuggestions("run 'eventcal config view'", "remove the file to reset")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	if !strings.Contains(err.Error(), "Suggestions:") {
		t.Errorf("formatted error should list suggestions")
	}
}
