package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeCellNotFound, "cell %q not found", "42")

	if err.Code != ErrCodeCellNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeCellNotFound)
	}

	if err.Message != `cell "42" not found` {
		t.Errorf("Message = %v, want %v", err.Message, `cell "42" not found`)
	}

	expected := `CELL_NOT_FOUND: cell "42" not found`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidXML, cause, "parse diagram")

	if err.Code != ErrCodeInvalidXML {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidXML)
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
			err:      New(ErrCodeGroupNotFound, "test"),
			code:     ErrCodeGroupNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeGroupNotFound, "test"),
			code:     ErrCodeLayerNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidXML, New(ErrCodeEmptyXML, "inner"), "outer"),
			code:     ErrCodeInvalidXML,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeCellNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeCellNotFound,
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
	if got := GetCode(New(ErrCodeSelfReference, "x")); got != ErrCodeSelfReference {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeSelfReference)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNotAGroup, "cell %q is not a group", "7")
	if got := UserMessage(err); got != `cell "7" is not a group` {
		t.Errorf("UserMessage() = %v", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %v", got)
	}
}
