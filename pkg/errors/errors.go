// Package errors provides structured error types for the Drawdeck application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the document model, CLI, and server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure that crosses a package boundary carries a stable string code.
// Callers branch on the code, never on message text. The document model
// returns these as values; nothing in this repository panics across an API.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeCellNotFound, "cell %q not found", id)
//	if errors.Is(err, errors.ErrCodeCellNotFound) {
//	    // Handle missing cell
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidXML, origErr, "parse diagram %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Cell and edge errors
	ErrCodeCellNotFound   Code = "CELL_NOT_FOUND"
	ErrCodeWrongCellType  Code = "WRONG_CELL_TYPE"
	ErrCodeSourceNotFound Code = "SOURCE_NOT_FOUND"
	ErrCodeTargetNotFound Code = "TARGET_NOT_FOUND"

	// Group errors
	ErrCodeGroupNotFound Code = "GROUP_NOT_FOUND"
	ErrCodeNotAGroup     Code = "NOT_A_GROUP"
	ErrCodeSelfReference Code = "SELF_REFERENCE"
	ErrCodeNotInGroup    Code = "NOT_IN_GROUP"

	// Layer and page errors
	ErrCodeLayerNotFound            Code = "LAYER_NOT_FOUND"
	ErrCodeCannotDeleteDefaultLayer Code = "CANNOT_DELETE_DEFAULT_LAYER"
	ErrCodePageNotFound             Code = "PAGE_NOT_FOUND"
	ErrCodeCannotDeleteLastPage     Code = "CANNOT_DELETE_LAST_PAGE"

	// XML codec errors
	ErrCodeEmptyXML   Code = "EMPTY_XML"
	ErrCodeInvalidXML Code = "INVALID_XML"

	// Batch reference errors
	ErrCodeInvalidSource Code = "INVALID_SOURCE"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"

	// Shape catalog errors
	ErrCodeShapeNotFound   Code = "SHAPE_NOT_FOUND"
	ErrCodeCatalogNotReady Code = "CATALOG_NOT_READY"

	// Validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   `json:"code"`    // Machine-readable error code
	Message string `json:"message"` // Human-readable message
	Cause   error  `json:"-"`       // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
