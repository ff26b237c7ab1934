package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraca/campushub/internal/app/models"
)

// IUserRepository defines database operations for user accounts
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error

	// Token-flow lookups. Both only match rows whose expiry is in the
	// future, so an expired token is indistinguishable from a wrong one.
	GetByVerificationToken(ctx context.Context, token string) (*models.User, error)
	GetByPasswordResetToken(ctx context.Context, token string) (*models.User, error)

	// Session state. SetRefreshToken overwrites unconditionally (login,
	// logout); RotateRefreshToken is a compare-and-set that fails when the
	// stored token no longer matches oldToken.
	SetRefreshToken(ctx context.Context, userID int64, token *string) error
	RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error
}

// IStudentRepository defines database operations for student profiles
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	// MaxSequence returns the highest sequence suffix among student numbers
	// beginning with prefix, or 0 when none exist.
	MaxSequence(ctx context.Context, prefix string) (int, error)
}

// IFacultyRepository defines database operations for faculty profiles
type IFacultyRepository interface {
	Create(ctx context.Context, member *models.FacultyMember) error
	GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error)
	MaxSequence(ctx context.Context, prefix string) (int, error)
}

// IDepartmentRepository defines database operations for departments
type IDepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllActive(ctx context.Context) ([]*models.Department, error)
	Upsert(ctx context.Context, department *models.Department) error
}

// Repositories bundles all repository implementations
type Repositories struct {
	User       *UserRepository
	Student    *StudentRepository
	Faculty    *FacultyRepository
	Department *DepartmentRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Student:    NewStudentRepository(db),
		Faculty:    NewFacultyRepository(db),
		Department: NewDepartmentRepository(db),
	}
}
