package services

import (
	"context"
	"mime/multipart"

	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/app/repositories"
	"github.com/mkaraca/campushub/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// UserService handles profile operations
type UserService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	facultyRepo repositories.IFacultyRepository
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	facultyRepo repositories.IFacultyRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
		storage:     storage,
		logger:      logger,
	}
}

// GetProfile returns the user's account information joined with its role
// profile. Admin accounts have no role profile; they get the bare account.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{UserResponse: dto.NewUserResponse(user)}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.Student = &dto.StudentProfile{
			StudentNumber:  student.StudentNumber,
			EnrollmentYear: student.EnrollmentYear,
			GPA:            student.GPA,
			IsScholarship:  student.IsScholarship,
			WalletBalance:  student.WalletBalance,
			Department:     dto.NewDepartmentResponse(student.Department),
		}
	case models.RoleFaculty:
		member, err := s.facultyRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.Faculty = &dto.FacultyProfile{
			EmployeeNumber: member.EmployeeNumber,
			Title:          string(member.Title),
			OfficeLocation: member.OfficeLocation,
			OfficeHours:    member.OfficeHours,
			Department:     dto.NewDepartmentResponse(member.Department),
		}
	}

	return profile, nil
}

// UpdateProfile applies the whitelisted profile fields. Email, password and
// role are not reachable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// UpdateProfilePicture stores the uploaded image and replaces the user's
// picture. The previous file is removed best effort; a leftover file is
// not worth failing the update over.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	oldPicture := user.ProfilePicture
	user.ProfilePicture = &filename

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if oldPicture != nil && s.storage.FileExists(*oldPicture) {
		if err := s.storage.DeleteFile(*oldPicture); err != nil {
			s.logger.Warn().Err(err).Str("file", *oldPicture).
				Msg("Failed to delete previous profile picture")
		}
	}

	return s.GetProfile(ctx, userID)
}
