package dto

import (
	"time"

	"github.com/mkaraca/campushub/internal/app/models"
)

// UserResponse represents basic user account information
type UserResponse struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Role            string    `json:"role"`
	Phone           *string   `json:"phone,omitempty"`
	ProfilePicture  *string   `json:"profilePicture,omitempty"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StudentProfile represents the student-specific part of a profile
type StudentProfile struct {
	StudentNumber  string             `json:"studentNumber"`
	EnrollmentYear int                `json:"enrollmentYear"`
	GPA            float64            `json:"gpa"`
	IsScholarship  bool               `json:"isScholarship"`
	WalletBalance  float64            `json:"walletBalance"`
	Department     DepartmentResponse `json:"department"`
}

// FacultyProfile represents the faculty-specific part of a profile
type FacultyProfile struct {
	EmployeeNumber string             `json:"employeeNumber"`
	Title          string             `json:"title"`
	OfficeLocation *string            `json:"officeLocation,omitempty"`
	OfficeHours    *string            `json:"officeHours,omitempty"`
	Department     DepartmentResponse `json:"department"`
}

// ProfileResponse represents a full user profile. Exactly one of Student
// and Faculty is set, matching the user's role.
type ProfileResponse struct {
	UserResponse
	Student *StudentProfile `json:"student,omitempty"`
	Faculty *FacultyProfile `json:"faculty,omitempty"`
}

// UpdateProfileRequest represents profile update data. Email and password
// are deliberately absent; they change only through their dedicated flows.
type UpdateProfileRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
}

// SaveDepartmentRequest represents an admin create-or-update of a
// department. Departments are keyed by code; saving an existing code
// updates it in place.
type SaveDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required,alpha"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// DepartmentResponse represents department information
type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// NewUserResponse maps a user model to its response representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Role:            string(user.Role),
		Phone:           user.Phone,
		ProfilePicture:  user.ProfilePicture,
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
	}
}

// NewDepartmentResponse maps a department model to its response representation
func NewDepartmentResponse(dept *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Code:        dept.Code,
		Description: dept.Description,
	}
}
