package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding or validation error into a standard
// ErrorDetail, with per-field messages when the error carries field information.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		validationErrors := NewValidationErrors()
		for _, fieldError := range fieldErrors {
			validationErrors.AddError(fieldError.Field(), formatFieldError(fieldError))
		}
		return NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed").
			WithDetails(validationErrors.Errors)
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
