// Package mocks provides function-field test doubles for the repository
// interfaces. Tests assign only the functions they need; calling an
// unassigned function panics, which surfaces unexpected repository use.
package mocks

import (
	"context"
	"mime/multipart"

	"github.com/mkaraca/campushub/internal/app/models"
)

// UserRepository is a configurable mock of repositories.IUserRepository
type UserRepository struct {
	CreateFn                    func(ctx context.Context, user *models.User) error
	GetByIDFn                   func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFn                func(ctx context.Context, email string) (*models.User, error)
	EmailExistsFn               func(ctx context.Context, email string) (bool, error)
	UpdateFn                    func(ctx context.Context, user *models.User) error
	DeleteFn                    func(ctx context.Context, id int64) error
	GetByVerificationTokenFn    func(ctx context.Context, token string) (*models.User, error)
	GetByPasswordResetTokenFn   func(ctx context.Context, token string) (*models.User, error)
	SetRefreshTokenFn           func(ctx context.Context, userID int64, token *string) error
	RotateRefreshTokenFn        func(ctx context.Context, userID int64, oldToken, newToken string) error
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.CreateFn(ctx, user)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFn(ctx, email)
}

func (m *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFn(ctx, email)
}

func (m *UserRepository) Update(ctx context.Context, user *models.User) error {
	return m.UpdateFn(ctx, user)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

func (m *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return m.GetByVerificationTokenFn(ctx, token)
}

func (m *UserRepository) GetByPasswordResetToken(ctx context.Context, token string) (*models.User, error) {
	return m.GetByPasswordResetTokenFn(ctx, token)
}

func (m *UserRepository) SetRefreshToken(ctx context.Context, userID int64, token *string) error {
	return m.SetRefreshTokenFn(ctx, userID, token)
}

func (m *UserRepository) RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error {
	return m.RotateRefreshTokenFn(ctx, userID, oldToken, newToken)
}

// StudentRepository is a configurable mock of repositories.IStudentRepository
type StudentRepository struct {
	CreateFn      func(ctx context.Context, student *models.Student) error
	GetByUserIDFn func(ctx context.Context, userID int64) (*models.Student, error)
	MaxSequenceFn func(ctx context.Context, prefix string) (int, error)
}

func (m *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return m.CreateFn(ctx, student)
}

func (m *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return m.GetByUserIDFn(ctx, userID)
}

func (m *StudentRepository) MaxSequence(ctx context.Context, prefix string) (int, error) {
	return m.MaxSequenceFn(ctx, prefix)
}

// FacultyRepository is a configurable mock of repositories.IFacultyRepository
type FacultyRepository struct {
	CreateFn      func(ctx context.Context, member *models.FacultyMember) error
	GetByUserIDFn func(ctx context.Context, userID int64) (*models.FacultyMember, error)
	MaxSequenceFn func(ctx context.Context, prefix string) (int, error)
}

func (m *FacultyRepository) Create(ctx context.Context, member *models.FacultyMember) error {
	return m.CreateFn(ctx, member)
}

func (m *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error) {
	return m.GetByUserIDFn(ctx, userID)
}

func (m *FacultyRepository) MaxSequence(ctx context.Context, prefix string) (int, error) {
	return m.MaxSequenceFn(ctx, prefix)
}

// DepartmentRepository is a configurable mock of repositories.IDepartmentRepository
type DepartmentRepository struct {
	GetByIDFn      func(ctx context.Context, id int64) (*models.Department, error)
	GetAllActiveFn func(ctx context.Context) ([]*models.Department, error)
	UpsertFn       func(ctx context.Context, department *models.Department) error
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *DepartmentRepository) GetAllActive(ctx context.Context) ([]*models.Department, error) {
	return m.GetAllActiveFn(ctx)
}

func (m *DepartmentRepository) Upsert(ctx context.Context, department *models.Department) error {
	return m.UpsertFn(ctx, department)
}

// EmailGateway is a configurable mock of email.Gateway
type EmailGateway struct {
	SendVerificationEmailFn  func(toEmail, token string) error
	SendPasswordResetEmailFn func(toEmail, token string) error
}

func (m *EmailGateway) SendVerificationEmail(toEmail, token string) error {
	return m.SendVerificationEmailFn(toEmail, token)
}

func (m *EmailGateway) SendPasswordResetEmail(toEmail, token string) error {
	return m.SendPasswordResetEmailFn(toEmail, token)
}

// FileStorage is a configurable mock of filestorage.FileStorage
type FileStorage struct {
	SaveFileFn   func(file *multipart.FileHeader) (string, error)
	FileExistsFn func(filename string) bool
	DeleteFileFn func(filename string) error
}

func (m *FileStorage) SaveFile(file *multipart.FileHeader) (string, error) {
	return m.SaveFileFn(file)
}

func (m *FileStorage) FileExists(filename string) bool {
	return m.FileExistsFn(filename)
}

func (m *FileStorage) DeleteFile(filename string) error {
	return m.DeleteFileFn(filename)
}
