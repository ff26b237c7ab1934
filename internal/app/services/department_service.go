package services

import (
	"context"
	"strings"

	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/app/models/dto"
	"github.com/mkaraca/campushub/internal/app/repositories"
)

// DepartmentService handles department lookups
type DepartmentService struct {
	deptRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(deptRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{deptRepo: deptRepo}
}

// ListActive returns all active departments ordered by name
func (s *DepartmentService) ListActive(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.deptRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		result = append(result, dto.NewDepartmentResponse(dept))
	}
	return result, nil
}

// Save creates or updates a department by code. Codes are stored
// upper-cased since they prefix student and employee numbers.
func (s *DepartmentService) Save(ctx context.Context, req *dto.SaveDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := &models.Department{
		Name:        req.Name,
		Code:        strings.ToUpper(req.Code),
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.deptRepo.Upsert(ctx, dept); err != nil {
		return nil, err
	}

	resp := dto.NewDepartmentResponse(dept)
	return &resp, nil
}

// Get returns a single department by ID
func (s *DepartmentService) Get(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDepartmentResponse(dept)
	return &resp, nil
}
