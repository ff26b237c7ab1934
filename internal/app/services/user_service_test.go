package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/app/repositories/mocks"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceDeps struct {
	userRepo    *mocks.UserRepository
	studentRepo *mocks.StudentRepository
	facultyRepo *mocks.FacultyRepository
	storage     *mocks.FileStorage
}

func newTestUserService(deps userServiceDeps) *UserService {
	if deps.userRepo == nil {
		deps.userRepo = &mocks.UserRepository{}
	}
	if deps.studentRepo == nil {
		deps.studentRepo = &mocks.StudentRepository{}
	}
	if deps.facultyRepo == nil {
		deps.facultyRepo = &mocks.FacultyRepository{}
	}
	if deps.storage == nil {
		deps.storage = &mocks.FileStorage{}
	}
	return NewUserService(deps.userRepo, deps.studentRepo, deps.facultyRepo, deps.storage, zerolog.Nop())
}

func studentUser() *models.User {
	phone := "+1-555-0100"
	return &models.User{
		ID:        30,
		Email:     "jane@example.edu",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleStudent,
		Phone:     &phone,
		IsActive:  true,
	}
}

func studentProfileRow() *models.Student {
	return &models.Student{
		ID:             1,
		UserID:         30,
		StudentNumber:  "CS240001",
		DepartmentID:   1,
		EnrollmentYear: 2024,
		GPA:            3.4,
		Department:     &models.Department{ID: 1, Name: "Computer Science", Code: "CS", IsActive: true},
	}
}

func TestGetProfileStudent(t *testing.T) {
	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return studentUser(), nil
			},
		},
		studentRepo: &mocks.StudentRepository{
			GetByUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
				return studentProfileRow(), nil
			},
		},
	})

	profile, err := svc.GetProfile(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.edu", profile.Email)
	require.NotNil(t, profile.Student)
	assert.Nil(t, profile.Faculty)
	assert.Equal(t, "CS240001", profile.Student.StudentNumber)
	assert.Equal(t, "CS", profile.Student.Department.Code)
}

func TestGetProfileFaculty(t *testing.T) {
	user := studentUser()
	user.Role = models.RoleFaculty

	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return user, nil
			},
		},
		facultyRepo: &mocks.FacultyRepository{
			GetByUserIDFn: func(ctx context.Context, userID int64) (*models.FacultyMember, error) {
				return &models.FacultyMember{
					UserID:         30,
					EmployeeNumber: "CS00001",
					Title:          models.TitleLecturer,
					Department:     &models.Department{ID: 1, Name: "Computer Science", Code: "CS"},
				}, nil
			},
		},
	})

	profile, err := svc.GetProfile(context.Background(), 30)
	require.NoError(t, err)
	require.NotNil(t, profile.Faculty)
	assert.Nil(t, profile.Student)
	assert.Equal(t, "CS00001", profile.Faculty.EmployeeNumber)
	assert.Equal(t, "lecturer", profile.Faculty.Title)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		},
	})

	_, err := svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileWhitelist(t *testing.T) {
	user := studentUser()
	originalEmail := user.Email

	var updated *models.User
	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return user, nil
			},
			UpdateFn: func(ctx context.Context, u *models.User) error {
				updated = u
				return nil
			},
		},
		studentRepo: &mocks.StudentRepository{
			GetByUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
				return studentProfileRow(), nil
			},
		},
	})

	newPhone := "+1-555-0199"
	profile, err := svc.UpdateProfile(context.Background(), 30, &dto.UpdateProfileRequest{
		FirstName: "Janet",
		LastName:  "Doe-Smith",
		Phone:     &newPhone,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe-Smith", updated.LastName)
	assert.Equal(t, &newPhone, updated.Phone)

	// Email stays what it was; this path cannot change it.
	assert.Equal(t, originalEmail, updated.Email)
	assert.Equal(t, originalEmail, profile.Email)
}

func TestUpdateProfilePictureReplacesOldFile(t *testing.T) {
	oldFile := "old-picture.png"
	user := studentUser()
	user.ProfilePicture = &oldFile

	var deletedFile string
	var updated *models.User
	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return user, nil
			},
			UpdateFn: func(ctx context.Context, u *models.User) error {
				updated = u
				return nil
			},
		},
		studentRepo: &mocks.StudentRepository{
			GetByUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
				return studentProfileRow(), nil
			},
		},
		storage: &mocks.FileStorage{
			SaveFileFn: func(file *multipart.FileHeader) (string, error) {
				return "new-picture.png", nil
			},
			FileExistsFn: func(filename string) bool { return true },
			DeleteFileFn: func(filename string) error {
				deletedFile = filename
				return nil
			},
		},
	})

	_, err := svc.UpdateProfilePicture(context.Background(), 30, &multipart.FileHeader{Filename: "upload.png"})
	require.NoError(t, err)
	require.NotNil(t, updated.ProfilePicture)
	assert.Equal(t, "new-picture.png", *updated.ProfilePicture)
	assert.Equal(t, oldFile, deletedFile)
}

func TestUpdateProfilePictureSkipsMissingOldFile(t *testing.T) {
	oldFile := "gone.png"
	user := studentUser()
	user.ProfilePicture = &oldFile

	deleteCalled := false
	svc := newTestUserService(userServiceDeps{
		userRepo: &mocks.UserRepository{
			GetByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
				return user, nil
			},
			UpdateFn: func(ctx context.Context, u *models.User) error { return nil },
		},
		studentRepo: &mocks.StudentRepository{
			GetByUserIDFn: func(ctx context.Context, userID int64) (*models.Student, error) {
				return studentProfileRow(), nil
			},
		},
		storage: &mocks.FileStorage{
			SaveFileFn: func(file *multipart.FileHeader) (string, error) {
				return "new.png", nil
			},
			FileExistsFn: func(filename string) bool { return false },
			DeleteFileFn: func(filename string) error {
				deleteCalled = true
				return nil
			},
		},
	})

	_, err := svc.UpdateProfilePicture(context.Background(), 30, &multipart.FileHeader{Filename: "upload.png"})
	require.NoError(t, err)
	assert.False(t, deleteCalled)
}
