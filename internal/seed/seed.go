// Package seed creates the default data the application needs on first run
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/app/repositories"
	"github.com/mkaraca/campushub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

var defaultDepartments = []models.Department{
	{Name: "Computer Science", Code: "CS", Description: "Department of Computer Science", IsActive: true},
	{Name: "Electrical Engineering", Code: "EE", Description: "Department of Electrical Engineering", IsActive: true},
	{Name: "Mathematics", Code: "MATH", Description: "Department of Mathematics", IsActive: true},
	{Name: "Business Administration", Code: "BUS", Description: "Department of Business Administration", IsActive: true},
}

// CreateDefaultData upserts the default departments and makes sure an admin
// account exists. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	var finalErr error
	for i := range defaultDepartments {
		dept := defaultDepartments[i]
		if err := repos.Department.Upsert(ctx, &dept); err != nil {
			lgr.Error().Err(err).Str("code", dept.Code).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := ensureAdminUser(ctx, repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// ensureAdminUser creates the initial admin account when no account with
// the admin email exists. The password comes from ADMIN_PASSWORD; without
// it no admin is created, since shipping a well-known default password
// would be worse than having no admin.
func ensureAdminUser(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		lgr.Debug().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	exists, err := repos.User.EmailExists(ctx, adminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:           adminEmail,
		Password:        hashed,
		FirstName:       "System",
		LastName:        "Administrator",
		Role:            models.RoleAdmin,
		IsActive:        true,
		IsEmailVerified: true,
	}

	if err := repos.User.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Admin account created")
	return nil
}
