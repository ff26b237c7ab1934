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
)

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	qb sq.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query, args, err := r.qb.
		Select("id", "name", "code", "description", "is_active").
		From("departments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building department query: %w", err)
	}

	dept := &models.Department{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return dept, nil
}

// GetAllActive lists active departments ordered by name
func (r *DepartmentRepository) GetAllActive(ctx context.Context) ([]*models.Department, error) {
	query, args, err := r.qb.
		Select("id", "name", "code", "description", "is_active").
		From("departments").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building department list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		dept := &models.Department{}
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// Upsert inserts a department or updates it when the code already exists.
// Used by the seeder so it stays idempotent across restarts.
func (r *DepartmentRepository) Upsert(ctx context.Context, dept *models.Department) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name, code, description, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, is_active = EXCLUDED.is_active
		RETURNING id`,
		dept.Name, dept.Code, dept.Description, dept.IsActive).Scan(&dept.ID)
	if err != nil {
		return fmt.Errorf("error upserting department: %w", err)
	}
	return nil
}
