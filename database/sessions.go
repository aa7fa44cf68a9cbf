package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const sessionSelect = `
	SELECT s.token, s.user_id, s.expires_at, s.created_at,
	       u.id, u.username, COALESCE(u.email, ''), COALESCE(u.mobile, ''), u.password_hash, u.role, u.status,
	       u.full_name, u.dob, u.gender, u.national_id, u.nationality, u.address, u.created_at
	FROM sessions s
	JOIN users u ON s.user_id = u.id`

func scanSession(row rowScanner) (*models.Session, error) {
	var ss models.Session
	u := &ss.User
	err := row.Scan(
		&ss.Token, &ss.UserID, &ss.ExpiresAt, &ss.CreatedAt,
		&u.ID, &u.Username, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role, &u.Status,
		&u.FullName, &u.DOB, &u.Gender, &u.NationalID, &u.Nationality, &u.Address, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ss, nil
}

// CreateSession persists an issued token
func (s *Store) CreateSession(ctx context.Context, ss *models.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, ss.Token, ss.UserID, ss.ExpiresAt, ss.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes every session that expired at or before now
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return res.RowsAffected()
}

// GetSession looks a token up together with its owner
func (s *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	ss, err := scanSession(s.db.QueryRowContext(ctx, sessionSelect+` WHERE s.token = $1`, token))
	if err != nil {
		return nil, noRows(err, "session")
	}
	return ss, nil
}

// LatestCustomerSession returns the newest unexpired session owned by an
// active non-admin account.
func (s *Store) LatestCustomerSession(ctx context.Context, now time.Time) (*models.Session, error) {
	ss, err := scanSession(s.db.QueryRowContext(ctx, sessionSelect+`
		WHERE s.expires_at > $1
		  AND u.role <> 'admin'
		  AND u.status = 'active'
		ORDER BY s.created_at DESC
		LIMIT 1`, now))
	if err != nil {
		return nil, noRows(err, "session")
	}
	return ss, nil
}

// DeleteSession removes a token; deleting an unknown token is not an error
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
