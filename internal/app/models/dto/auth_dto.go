package dto

import "github.com/mkaraca/campushub/internal/app/models"

// RegisterRequest represents a user registration request. Role-specific
// fields are validated in the service since binding tags cannot express
// the conditional requirements.
type RegisterRequest struct {
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=6"`
	FirstName    string          `json:"firstName" binding:"required"`
	LastName     string          `json:"lastName" binding:"required"`
	Role         models.RoleType `json:"role" binding:"required"`
	Phone        *string         `json:"phone,omitempty"`
	DepartmentID int64           `json:"departmentId" binding:"required,min=1"`

	// Student fields. StudentNumber may be supplied to override the
	// generated one.
	EnrollmentYear int     `json:"enrollmentYear,omitempty"`
	StudentNumber  *string `json:"studentNumber,omitempty"`

	// Faculty fields. EmployeeNumber may be supplied to override the
	// generated one.
	Title          models.FacultyTitle `json:"title,omitempty"`
	OfficeLocation *string             `json:"officeLocation,omitempty"`
	OfficeHours    *string             `json:"officeHours,omitempty"`
	EmployeeNumber *string             `json:"employeeNumber,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the JWT token pair issued on login and refresh
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// VerifyEmailRequest represents an email verification request
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ForgotPasswordRequest represents a password reset initiation request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password reset completion request
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RegisterResponse represents a successful registration response
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
