package middleware

import (
	"errors"
	"net/http"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// HandleAPIError maps service-layer errors to HTTP responses. Controllers
// call it for any error bubbling up from a service so that status codes
// and error codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput, apperrors.ErrBadRequest, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed")),
		))
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrUniversityNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found")),
		))
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists, apperrors.ErrUniversityAlreadyExists, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource already exists")),
		))
	default:
		// Unknown errors never leak internals to the client.
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// errorMessage prefers the message carried by a CustomError, falling back
// to the given default for bare sentinel errors.
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
