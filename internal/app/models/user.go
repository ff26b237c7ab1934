package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID                       int64      `json:"id" db:"id"`
	Email                    string     `json:"email" db:"email"`
	Password                 string     `json:"-" db:"password"` // Hashed password, excluded from JSON
	FirstName                string     `json:"firstName" db:"first_name"`
	LastName                 string     `json:"lastName" db:"last_name"`
	Role                     RoleType   `json:"role" db:"role"`
	Phone                    *string    `json:"phone,omitempty" db:"phone"`
	ProfilePicture           *string    `json:"profilePicture,omitempty" db:"profile_picture"`
	IsActive                 bool       `json:"isActive" db:"is_active"`
	IsEmailVerified          bool       `json:"isEmailVerified" db:"is_email_verified"`
	EmailVerificationToken   *string    `json:"-" db:"email_verification_token"`
	EmailVerificationExpires *time.Time `json:"-" db:"email_verification_expires"`
	PasswordResetToken       *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpires     *time.Time `json:"-" db:"password_reset_expires"`
	RefreshToken             *string    `json:"-" db:"refresh_token"`
	CreatedAt                time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time  `json:"updatedAt" db:"updated_at"`
}
