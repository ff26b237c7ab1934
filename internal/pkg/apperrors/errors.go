package apperrors

import "errors"

// Registration errors
var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentInactive   = errors.New("department is not active")
	ErrStudentNumberExists  = errors.New("student number already in use")
	ErrEmployeeNumberExists = errors.New("employee number already in use")
	ErrIdentifierExhausted  = errors.New("identifier sequence exhausted")
)

// Authentication errors
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")
)

// Verification / reset token errors. Expired and unknown tokens share one
// kind so callers cannot tell which it was.
var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

// Resource errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// DuplicateIdentifier reports whether err is a student or employee number
// collision.
func DuplicateIdentifier(err error) bool {
	return errors.Is(err, ErrStudentNumberExists) || errors.Is(err, ErrEmployeeNumberExists)
}
