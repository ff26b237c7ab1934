package services

import (
	"context"
	"testing"

	"github.com/mkaraca/campushub/internal/app/repositories/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStudentNumber(t *testing.T) {
	tests := []struct {
		name           string
		deptCode       string
		enrollmentYear int
		maxSequence    int
		wantPrefix     string
		want           string
	}{
		{
			name:           "first number for a fresh prefix",
			deptCode:       "CS",
			enrollmentYear: 2024,
			maxSequence:    0,
			wantPrefix:     "CS24",
			want:           "CS240001",
		},
		{
			name:           "increments the highest existing sequence",
			deptCode:       "CS",
			enrollmentYear: 2024,
			maxSequence:    1,
			wantPrefix:     "CS24",
			want:           "CS240002",
		},
		{
			name:           "longer department code",
			deptCode:       "MATH",
			enrollmentYear: 2025,
			maxSequence:    17,
			wantPrefix:     "MATH25",
			want:           "MATH250018",
		},
		{
			name:           "year below 2000 keeps two digits",
			deptCode:       "EE",
			enrollmentYear: 1999,
			maxSequence:    0,
			wantPrefix:     "EE99",
			want:           "EE990001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := &mocks.StudentRepository{
				MaxSequenceFn: func(ctx context.Context, prefix string) (int, error) {
					assert.Equal(t, tt.wantPrefix, prefix)
					return tt.maxSequence, nil
				},
			}
			gen := NewNumberGenerator(studentRepo, &mocks.FacultyRepository{})

			got, err := gen.NextStudentNumber(context.Background(), tt.deptCode, tt.enrollmentYear)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextEmployeeNumber(t *testing.T) {
	facultyRepo := &mocks.FacultyRepository{
		MaxSequenceFn: func(ctx context.Context, prefix string) (int, error) {
			assert.Equal(t, "CS", prefix)
			return 41, nil
		},
	}
	gen := NewNumberGenerator(&mocks.StudentRepository{}, facultyRepo)

	got, err := gen.NextEmployeeNumber(context.Background(), "CS")
	require.NoError(t, err)
	assert.Equal(t, "CS00042", got)
}

func TestNextEmployeeNumberFirst(t *testing.T) {
	facultyRepo := &mocks.FacultyRepository{
		MaxSequenceFn: func(ctx context.Context, prefix string) (int, error) {
			return 0, nil
		},
	}
	gen := NewNumberGenerator(&mocks.StudentRepository{}, facultyRepo)

	got, err := gen.NextEmployeeNumber(context.Background(), "EE")
	require.NoError(t, err)
	assert.Equal(t, "EE00001", got)
}
