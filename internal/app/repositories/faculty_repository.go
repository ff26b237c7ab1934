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

// FacultyRepository handles faculty member profile database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	qb sq.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a faculty member profile row
func (r *FacultyRepository) Create(ctx context.Context, member *models.FacultyMember) error {
	query, args, err := r.qb.
		Insert("faculty_members").
		Columns("user_id", "employee_number", "department_id", "title",
			"office_location", "office_hours").
		Values(member.UserID, member.EmployeeNumber, member.DepartmentID, member.Title,
			member.OfficeLocation, member.OfficeHours).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building faculty insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&member.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_members_employee_number_key") {
			return apperrors.ErrEmployeeNumberExists
		}
		return fmt.Errorf("error creating faculty member: %w", err)
	}

	return nil
}

// GetByUserID retrieves a faculty profile with its department
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error) {
	query, args, err := r.qb.
		Select("f.id", "f.user_id", "f.employee_number", "f.department_id", "f.title",
			"f.office_location", "f.office_hours",
			"d.id", "d.name", "d.code", "d.description", "d.is_active").
		From("faculty_members f").
		Join("departments d ON d.id = f.department_id").
		Where(sq.Eq{"f.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building faculty query: %w", err)
	}

	member := &models.FacultyMember{Department: &models.Department{}}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&member.ID, &member.UserID, &member.EmployeeNumber, &member.DepartmentID,
		&member.Title, &member.OfficeLocation, &member.OfficeHours,
		&member.Department.ID, &member.Department.Name, &member.Department.Code,
		&member.Department.Description, &member.Department.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}

	return member, nil
}

// MaxSequence returns the highest sequence suffix in use for employee numbers
// in prefix's scope, or 0 when the scope is unused. The match is fixed-width
// so overlapping department codes stay in separate scopes.
func (r *FacultyRepository) MaxSequence(ctx context.Context, prefix string) (int, error) {
	query, args, err := r.qb.
		Select("employee_number").
		From("faculty_members").
		Where(sq.Like{"employee_number": sequenceScope(prefix, employeeSequenceWidth)}).
		OrderBy("employee_number DESC").
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
		return 0, fmt.Errorf("error querying max employee number: %w", err)
	}

	return parseSequence(prefix, number, employeeSequenceWidth)
}
