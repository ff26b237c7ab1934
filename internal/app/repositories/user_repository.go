package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/mkaraca/campushub/internal/pkg/apperrors"
	"github.com/mkaraca/campushub/internal/pkg/dberrors"
)

const userColumns = `id, email, password, first_name, last_name, role, phone, profile_picture,
	is_active, is_email_verified, email_verification_token, email_verification_expires,
	password_reset_token, password_reset_expires, refresh_token, created_at, updated_at`

// UserRepository handles user account database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.Phone, &user.ProfilePicture,
		&user.IsActive, &user.IsEmailVerified,
		&user.EmailVerificationToken, &user.EmailVerificationExpires,
		&user.PasswordResetToken, &user.PasswordResetExpires,
		&user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user and sets its generated ID. Emails are stored
// lower-cased so uniqueness is case-insensitive.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role, phone,
			is_active, is_email_verified, email_verification_token, email_verification_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.Phone,
		user.IsActive, user.IsEmailVerified, user.EmailVerificationToken, user.EmailVerificationExpires).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, strings.ToLower(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// Update writes the user's mutable fields back to the database
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, first_name = $2, last_name = $3, phone = $4,
			profile_picture = $5, is_active = $6, is_email_verified = $7,
			email_verification_token = $8, email_verification_expires = $9,
			password_reset_token = $10, password_reset_expires = $11,
			updated_at = $12
		WHERE id = $13`,
		user.Password, user.FirstName, user.LastName, user.Phone,
		user.ProfilePicture, user.IsActive, user.IsEmailVerified,
		user.EmailVerificationToken, user.EmailVerificationExpires,
		user.PasswordResetToken, user.PasswordResetExpires,
		time.Now(), user.ID)

	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Profile rows cascade via foreign keys.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// GetByVerificationToken finds the user holding an unexpired email
// verification token.
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email_verification_token = $1 AND email_verification_expires > $2`,
		token, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by verification token: %w", err)
	}
	return user, nil
}

// GetByPasswordResetToken finds the user holding an unexpired password
// reset token.
func (r *UserRepository) GetByPasswordResetToken(ctx context.Context, token string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE password_reset_token = $1 AND password_reset_expires > $2`,
		token, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by reset token: %w", err)
	}
	return user, nil
}

// SetRefreshToken overwrites the stored refresh token. A nil token clears
// the session (logout).
func (r *UserRepository) SetRefreshToken(ctx context.Context, userID int64, token *string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET refresh_token = $1, updated_at = $2 WHERE id = $3`,
		token, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error setting refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// RotateRefreshToken swaps oldToken for newToken in a single compare-and-set
// update. When two refresh calls race with the same token, exactly one
// matches the stored value; the loser gets ErrInvalidRefreshToken.
// Deactivated accounts never match, so their sessions cannot be renewed.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET refresh_token = $1, updated_at = $2
		 WHERE id = $3 AND refresh_token = $4 AND is_active = TRUE`,
		newToken, time.Now(), userID, oldToken)
	if err != nil {
		return fmt.Errorf("error rotating refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidRefreshToken
	}
	return nil
}
