package services

import (
	"context"
	"fmt"

	"github.com/mkaraca/campushub/internal/app/repositories"
)

const (
	studentSequenceWidth  = 4
	employeeSequenceWidth = 5
)

// NumberGenerator produces unique student and employee numbers.
//
// Student numbers are <department code><two-digit year><4-digit sequence>,
// e.g. CS240001. Employee numbers are <department code><5-digit sequence>,
// e.g. CS00001. The generator reads the highest sequence currently in use
// for a prefix and returns the next one; the unique constraint on the
// number column is the final arbiter under concurrency, and callers retry
// on a duplicate.
type NumberGenerator struct {
	studentRepo repositories.IStudentRepository
	facultyRepo repositories.IFacultyRepository
}

// NewNumberGenerator creates a new NumberGenerator
func NewNumberGenerator(studentRepo repositories.IStudentRepository, facultyRepo repositories.IFacultyRepository) *NumberGenerator {
	return &NumberGenerator{
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
	}
}

// NextStudentNumber returns the next unused student number for the
// department code and enrollment year.
func (g *NumberGenerator) NextStudentNumber(ctx context.Context, deptCode string, enrollmentYear int) (string, error) {
	prefix := fmt.Sprintf("%s%02d", deptCode, enrollmentYear%100)

	seq, err := g.studentRepo.MaxSequence(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("error generating student number: %w", err)
	}

	return fmt.Sprintf("%s%0*d", prefix, studentSequenceWidth, seq+1), nil
}

// NextEmployeeNumber returns the next unused employee number for the
// department code.
func (g *NumberGenerator) NextEmployeeNumber(ctx context.Context, deptCode string) (string, error) {
	seq, err := g.facultyRepo.MaxSequence(ctx, deptCode)
	if err != nil {
		return "", fmt.Errorf("error generating employee number: %w", err)
	}

	return fmt.Sprintf("%s%0*d", deptCode, employeeSequenceWidth, seq+1), nil
}
