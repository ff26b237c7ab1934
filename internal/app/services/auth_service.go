package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/app/repositories"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/mkaraca/campushub/internal/pkg/auth"
	"github.com/mkaraca/campushub/internal/pkg/email"
	"github.com/rs/zerolog"
)

const (
	// maxNumberAttempts bounds the retry loop when concurrent registrations
	// race for the same student or employee number.
	maxNumberAttempts = 10

	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

// AuthService handles registration, login and the token lifecycle
type AuthService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	facultyRepo repositories.IFacultyRepository
	deptRepo    repositories.IDepartmentRepository
	numberGen   *NumberGenerator
	jwtService  *auth.JWTService
	mailer      email.Gateway
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	facultyRepo repositories.IFacultyRepository,
	deptRepo repositories.IDepartmentRepository,
	numberGen *NumberGenerator,
	jwtService *auth.JWTService,
	mailer email.Gateway,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		deptRepo:    deptRepo,
		numberGen:   numberGen,
		jwtService:  jwtService,
		mailer:      mailer,
		logger:      logger,
	}
}

// Register creates a user account with its role profile. The user row and
// the profile row are created in sequence; if the profile cannot be created
// the user row is removed again so a failed registration leaves nothing
// behind.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	dept, err := s.deptRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !dept.IsActive {
		return nil, apperrors.ErrDepartmentInactive
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	verificationToken, err := email.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("error generating verification token: %w", err)
	}
	verificationExpires := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		Email:                    req.Email,
		Password:                 hashed,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Role:                     req.Role,
		Phone:                    req.Phone,
		IsActive:                 true,
		IsEmailVerified:          false,
		EmailVerificationToken:   &verificationToken,
		EmailVerificationExpires: &verificationExpires,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.createProfile(ctx, user, dept, req); err != nil {
		// Compensating delete: the account must not exist without its
		// role profile.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.logger.Error().Err(delErr).Int64("userId", user.ID).
				Msg("Failed to remove user after profile creation failure")
		}
		return nil, err
	}

	// Email delivery is best effort; registration already succeeded.
	if err := s.mailer.SendVerificationEmail(user.Email, verificationToken); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).
			Msg("Failed to send verification email")
	}

	return &dto.RegisterResponse{
		Message: "Registration successful. Please verify your email.",
		User:    dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if !req.Role.IsRegistrable() {
		return fmt.Errorf("%w: role %q cannot register", apperrors.ErrValidationFailed, req.Role)
	}

	switch req.Role {
	case models.RoleStudent:
		if req.EnrollmentYear < 1900 || req.EnrollmentYear > time.Now().Year()+1 {
			return fmt.Errorf("%w: invalid enrollment year", apperrors.ErrValidationFailed)
		}
	case models.RoleFaculty:
		if !models.ValidFacultyTitle(req.Title) {
			return fmt.Errorf("%w: invalid faculty title", apperrors.ErrValidationFailed)
		}
	}

	return nil
}

// explicitNumber returns the caller-supplied identifier for the role, if any.
func explicitNumber(req *dto.RegisterRequest) *string {
	switch req.Role {
	case models.RoleStudent:
		return req.StudentNumber
	case models.RoleFaculty:
		return req.EmployeeNumber
	}
	return nil
}

// createProfile inserts the role profile. Generated numbers are retried with
// a fresh value when a concurrent registration claimed the same one; an
// explicitly supplied number is used as-is and a collision on it fails
// immediately.
func (s *AuthService) createProfile(ctx context.Context, user *models.User, dept *models.Department, req *dto.RegisterRequest) error {
	explicit := explicitNumber(req)

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		var err error

		switch user.Role {
		case models.RoleStudent:
			number := ""
			if explicit != nil {
				number = *explicit
			} else {
				number, err = s.numberGen.NextStudentNumber(ctx, dept.Code, req.EnrollmentYear)
				if err != nil {
					return err
				}
			}
			err = s.studentRepo.Create(ctx, &models.Student{
				UserID:         user.ID,
				StudentNumber:  number,
				DepartmentID:   dept.ID,
				EnrollmentYear: req.EnrollmentYear,
			})
		case models.RoleFaculty:
			number := ""
			if explicit != nil {
				number = *explicit
			} else {
				number, err = s.numberGen.NextEmployeeNumber(ctx, dept.Code)
				if err != nil {
					return err
				}
			}
			err = s.facultyRepo.Create(ctx, &models.FacultyMember{
				UserID:         user.ID,
				EmployeeNumber: number,
				DepartmentID:   dept.ID,
				Title:          req.Title,
				OfficeLocation: req.OfficeLocation,
				OfficeHours:    req.OfficeHours,
			})
		default:
			return fmt.Errorf("%w: role %q has no profile", apperrors.ErrValidationFailed, user.Role)
		}

		if err == nil {
			return nil
		}
		if explicit != nil || !apperrors.DuplicateIdentifier(err) {
			return err
		}

		s.logger.Warn().Int("attempt", attempt+1).Int64("userId", user.ID).
			Msg("Generated number already taken, retrying")
	}

	return apperrors.ErrIdentifierExhausted
}

// Login authenticates a user and issues a token pair. A missing account, a
// deactivated account and a wrong password all produce the same error so
// the response reveals nothing about which one it was.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *tokens,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) issueSession(ctx context.Context, userID int64) (*dto.TokenResponse, error) {
	accessToken, refreshToken, err := s.jwtService.IssuePair(userID)
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, userID, &refreshToken); err != nil {
		return nil, err
	}

	return s.tokenResponse(accessToken, refreshToken), nil
}

func (s *AuthService) tokenResponse(accessToken, refreshToken string) *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(s.jwtService.AccessTokenTTL().Seconds()),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(s.jwtService.RefreshTokenTTL().Seconds()),
	}
}

// RefreshToken exchanges a valid refresh token for a fresh pair. The stored
// token is rotated with a compare-and-set, so a token can be redeemed at
// most once; replaying it after rotation fails.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.jwtService.Verify(refreshToken, auth.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	newAccess, newRefresh, err := s.jwtService.IssuePair(userID)
	if err != nil {
		return nil, fmt.Errorf("error issuing tokens: %w", err)
	}

	if err := s.userRepo.RotateRefreshToken(ctx, userID, refreshToken, newRefresh); err != nil {
		return nil, err
	}

	return s.tokenResponse(newAccess, newRefresh), nil
}

// Logout clears the stored refresh token. Logging out twice is harmless.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.userRepo.SetRefreshToken(ctx, userID, nil)
}

// VerifyEmail marks the account as verified and consumes the token. An
// unknown, already-used or expired token all fail the same way.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidOrExpiredToken
		}
		return err
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = nil
	user.EmailVerificationExpires = nil

	return s.userRepo.Update(ctx, user)
}

// ForgotPassword starts the password reset flow. It never reveals whether
// the email is registered: unknown and inactive accounts return success
// without sending anything.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if !user.IsActive {
		return nil
	}

	resetToken, err := email.GenerateToken()
	if err != nil {
		return fmt.Errorf("error generating reset token: %w", err)
	}
	expires := time.Now().Add(passwordResetTokenTTL)

	user.PasswordResetToken = &resetToken
	user.PasswordResetExpires = &expires

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, resetToken); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).
			Msg("Failed to send password reset email")
	}

	return nil
}

// ResetPassword sets a new password using a reset token, consumes the token
// and revokes the active session so stolen refresh tokens die with the old
// password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.GetByPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidOrExpiredToken
		}
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.Password = hashed
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.userRepo.SetRefreshToken(ctx, user.ID, nil)
}
