package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/mkaraca/campushub/internal/pkg/dberrors"
)

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
	qb sq.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a student profile row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.qb.
		Insert("students").
		Columns("user_id", "student_number", "department_id", "enrollment_year",
			"gpa", "is_scholarship", "wallet_balance").
		Values(student.UserID, student.StudentNumber, student.DepartmentID, student.EnrollmentYear,
			student.GPA, student.IsScholarship, student.WalletBalance).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building student insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&student.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByUserID retrieves a student profile with its department
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query, args, err := r.qb.
		Select("s.id", "s.user_id", "s.student_number", "s.department_id", "s.enrollment_year",
			"s.gpa", "s.is_scholarship", "s.wallet_balance",
			"d.id", "d.name", "d.code", "d.description", "d.is_active").
		From("students s").
		Join("departments d ON d.id = s.department_id").
		Where(sq.Eq{"s.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student query: %w", err)
	}

	student := &models.Student{Department: &models.Department{}}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&student.ID, &student.UserID, &student.StudentNumber, &student.DepartmentID,
		&student.EnrollmentYear, &student.GPA, &student.IsScholarship, &student.WalletBalance,
		&student.Department.ID, &student.Department.Name, &student.Department.Code,
		&student.Department.Description, &student.Department.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// MaxSequence returns the highest sequence suffix in use for student numbers
// in prefix's scope, or 0 when the scope is unused. The match is fixed-width
// so overlapping department codes stay in separate scopes, and sequences are
// zero-padded so the lexicographic maximum is also the numeric maximum.
func (r *StudentRepository) MaxSequence(ctx context.Context, prefix string) (int, error) {
	query, args, err := r.qb.
		Select("student_number").
		From("students").
		Where(sq.Like{"student_number": sequenceScope(prefix, studentSequenceWidth)}).
		OrderBy("student_number DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sequence query: %w", err)
	}

	var number string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&number); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error querying max student number: %w", err)
	}

	return parseSequence(prefix, number, studentSequenceWidth)
}
