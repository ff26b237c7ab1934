package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/mkaraca/campushub/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Anything without an
// explicit mapping becomes a 500 with a generic message so internals never
// leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrInvalidRefreshToken):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid refresh token")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrInvalidOrExpiredToken):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidToken, "Invalid or expired token")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrStudentNumberExists), errors.Is(err, apperrors.ErrEmployeeNumberExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Identifier already exists")
	case errors.Is(err, apperrors.ErrIdentifierExhausted):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "No identifiers available, try again")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrDepartmentInactive):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Department is not accepting registrations")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())
	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// HandleValidationError converts gin binding errors into a 400 response
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
