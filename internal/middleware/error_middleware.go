package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campuslink/internal/app/models/dto"
	"github.com/yigit/campuslink/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto status codes and the standard error body
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateIdentity):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeDuplicateIdentity, apperrors.ErrDuplicateIdentity.Error()).
			WithReason("duplicate").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRole, apperrors.ErrInvalidRole.Error()).
			WithReason("invalid_role").
			WithField("role").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))
	default:
		// internals stay in the logs
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithReason("internal").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}

// messageOr returns the CustomError message when one was set
func messageOr(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
