package database

import (
	"context"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const passengerColumns = `id, user_id, name, dob, gender, id_number, mobile, position`

func scanPassenger(row rowScanner) (*models.Passenger, error) {
	var p models.Passenger
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.DOB, &p.Gender, &p.IDNumber, &p.Mobile, &p.Position)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPassengers returns a user's saved passengers in insertion order
func (s *Store) ListPassengers(ctx context.Context, userID int) ([]models.Passenger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+passengerColumns+` FROM passengers WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query passengers: %w", err)
	}
	defer rows.Close()

	var passengers []models.Passenger
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passenger: %w", err)
		}
		passengers = append(passengers, *p)
	}
	return passengers, rows.Err()
}

// GetPassenger looks a passenger up by id within one user's list
func (s *Store) GetPassenger(ctx context.Context, userID int, id string) (*models.Passenger, error) {
	p, err := scanPassenger(s.db.QueryRowContext(ctx,
		`SELECT `+passengerColumns+` FROM passengers WHERE user_id = $1 AND id = $2`, userID, id))
	if err != nil {
		return nil, noRows(err, "passenger")
	}
	return p, nil
}

// AddPassenger appends a passenger to the end of the user's list
func (s *Store) AddPassenger(ctx context.Context, p *models.Passenger) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO passengers (id, user_id, name, dob, gender, id_number, mobile, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        (SELECT COALESCE(MAX(position), 0) + 1 FROM passengers WHERE user_id = $2))
		RETURNING position
	`, p.ID, p.UserID, p.Name, p.DOB, p.Gender, p.IDNumber, p.Mobile).Scan(&p.Position)
	if err != nil {
		return fmt.Errorf("failed to add passenger: %w", err)
	}
	return nil
}

// UpdatePassenger overwrites a passenger's details, keeping its position
func (s *Store) UpdatePassenger(ctx context.Context, p *models.Passenger) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE passengers
		SET name = $1, dob = $2, gender = $3, id_number = $4, mobile = $5
		WHERE user_id = $6 AND id = $7
	`, p.Name, p.DOB, p.Gender, p.IDNumber, p.Mobile, p.UserID, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update passenger: %w", err)
	}
	return expectAffected(res, "passenger")
}

// DeletePassenger removes a passenger from the user's list
func (s *Store) DeletePassenger(ctx context.Context, userID int, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM passengers WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete passenger: %w", err)
	}
	return expectAffected(res, "passenger")
}
