package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const userColumns = `id, username, COALESCE(email, ''), COALESCE(mobile, ''), password_hash, role, status,
	full_name, dob, gender, national_id, nationality, address, created_at`

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role, &u.Status,
		&u.FullName, &u.DOB, &u.Gender, &u.NationalID, &u.Nationality, &u.Address, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// nullable stores empty optional contact fields as NULL so the unique
// constraints only apply to values that are present.
func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// CreateUser inserts an account and sets its id and creation time
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, mobile, password_hash, role, status,
		                   full_name, dob, gender, national_id, nationality, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, u.Username, nullable(u.Email), nullable(u.Mobile), u.PasswordHash, u.Role, u.Status,
		u.FullName, u.DOB, u.Gender, u.NationalID, u.Nationality, u.Address).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", u.Username, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Store) getUserBy(ctx context.Context, column string, value any) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value))
	if err != nil {
		return nil, noRows(err, "user")
	}
	return u, nil
}

// GetUser looks an account up by id
func (s *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.getUserBy(ctx, "id", id)
}

// GetUserByUsername looks an account up by username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUserBy(ctx, "username", username)
}

// GetUserByEmail looks an account up by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserBy(ctx, "email", email)
}

// GetUserByMobile looks an account up by mobile number
func (s *Store) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return s.getUserBy(ctx, "mobile", mobile)
}

// UpdateProfile overwrites the editable profile fields of an account
func (s *Store) UpdateProfile(ctx context.Context, u *models.User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET email = $1, mobile = $2, full_name = $3, dob = $4, gender = $5,
		    national_id = $6, nationality = $7, address = $8
		WHERE id = $9
	`, nullable(u.Email), nullable(u.Mobile), u.FullName, u.DOB, u.Gender,
		u.NationalID, u.Nationality, u.Address, u.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %d: %w", u.ID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return expectAffected(res, "user")
}

// SetUserStatus activates or deactivates an account
func (s *Store) SetUserStatus(ctx context.Context, id int, status models.UserStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return expectAffected(res, "user")
}
