package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/doruk/courseatlas/internal/app/models/dto"
	"github.com/doruk/courseatlas/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope.
// CustomError messages are surfaced; unknown errors collapse to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Course not found"))))
	case errors.Is(err, apperrors.ErrTagTypeNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Tag type not found"))))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed"))))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message("Invalid request"))))
	case errors.Is(err, apperrors.ErrSchemaMismatch):
		// The store schema does not match what the queries expect; the
		// operator has to run migrations, retrying will not help.
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeSchemaMismatch, message("Store schema mismatch"))))
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(503, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, message("Store unavailable"))))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
