package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRange, "end %s is before start", "2025-12-01")

	if err.Code != ErrCodeInvalidRange {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRange)
	}

	if err.Message != "end 2025-12-01 is before start" {
		t.Errorf("Message = %v, want %v", err.Message, "end 2025-12-01 is before start")
	}

	expected := "INVALID_RANGE: end 2025-12-01 is before start"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeOutputWrite, cause, "write plan.pdf")

	if err.Code != ErrCodeOutputWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutputWrite)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "OUTPUT_WRITE: write plan.pdf: disk full"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeInvalidGeometry, "test"),
			code:     ErrCodeInvalidGeometry,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidGeometry, "test"),
			code:     ErrCodeOutputWrite,
			expected: false,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeOutputWrite, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeOutputWrite,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
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
	if got := GetCode(New(ErrCodeInvalidConfig, "x")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidRange, "x"), true},
		{New(ErrCodeInvalidGeometry, "x"), true},
		{New(ErrCodeInvalidConfig, "x"), true},
		{New(ErrCodeOutputWrite, "x"), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := IsConfiguration(tt.err); got != tt.want {
			t.Errorf("IsConfiguration(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidRange, "bad range")); got != "bad range" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad range")
	}
	wrapped := Wrap(ErrCodeOutputWrite, errors.New("disk full"), "write plan.pdf")
	if got := UserMessage(wrapped); got != "write plan.pdf: disk full" {
		t.Errorf("UserMessage(wrapped) = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}
