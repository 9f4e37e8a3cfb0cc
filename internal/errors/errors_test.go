package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to connect: connection refused"),
			expected: "Error: failed to connect: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s", "settings")
	if result != "Error: failed to load settings" {
		t.Errorf("Formatf() = %q", result)
	}
}

func TestFetchfWrapsSentinel(t *testing.T) {
	err := Fetchf("status %d", 502)
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("Fetchf result does not match ErrFetchFailed: %v", err)
	}
	if errors.Is(err, ErrSaveFailed) {
		t.Errorf("Fetchf result matches ErrSaveFailed: %v", err)
	}
	if err.Error() != "settings fetch failed: status 502" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestSavefWrapsSentinel(t *testing.T) {
	cause := errors.New("connection reset")
	err := Savef("sending document: %v", cause)
	if !errors.Is(err, ErrSaveFailed) {
		t.Errorf("Savef result does not match ErrSaveFailed: %v", err)
	}
	if errors.Is(err, ErrFetchFailed) {
		t.Errorf("Savef result matches ErrFetchFailed: %v", err)
	}
}
