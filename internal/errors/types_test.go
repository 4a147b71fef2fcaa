package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Type: ErrorTypeValidation, Message: "name is required"}
	assert.Equal(t, "validation: name is required", plain.Error())

	wrapped := &AppError{
		Type:    ErrorTypeDatabase,
		Message: "insert failed",
		Cause:   errors.New("disk full"),
	}
	assert.Equal(t, "database: insert failed (caused by: disk full)", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &AppError{Type: ErrorTypeDatabase, Cause: cause}

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, (&AppError{}).Unwrap())
}

func TestAppError_Is(t *testing.T) {
	a := &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}
	b := &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound, Message: "other"}
	c := &AppError{Type: ErrorTypeInvalidInput, Code: CodeInvalidInput}

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
	assert.False(t, a.Is(errors.New("plain")))
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}

	_, ok := err.GetContext("field")
	assert.False(t, ok)

	returned := err.WithContext("field", "Name")
	assert.Same(t, err, returned)

	value, ok := err.GetContext("field")
	assert.True(t, ok)
	assert.Equal(t, "Name", value)
}
