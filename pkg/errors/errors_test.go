package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodePrecondition, "vertex at %s already occupied", "1,2,0")

	if err.Code != ErrCodePrecondition {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodePrecondition)
	}

	if err.Message != "vertex at 1,2,0 already occupied" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "PRECONDITION_VIOLATION: vertex at 1,2,0 already occupied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "write graph")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodePrecondition, "test"),
			code:     ErrCodePrecondition,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodePrecondition, "test"),
			code:     ErrCodeUnsupported,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidSpec, New(ErrCodeInvalidKind, "inner"), "outer"),
			code:     ErrCodeInvalidSpec,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodePrecondition,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodePrecondition,
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "missing")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodePrecondition, "X size=3 not a multiple of ramp block length ratio=2")
	if got := UserMessage(err); got != err.Message {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
