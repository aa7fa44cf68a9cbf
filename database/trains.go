package database

import (
	"context"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const trainColumns = `id, train_number, train_name, status`

func scanTrain(row rowScanner) (*models.Train, error) {
	var t models.Train
	if err := row.Scan(&t.ID, &t.Number, &t.Name, &t.Status); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTrains returns every train, active or not, ordered by id
func (s *Store) ListTrains(ctx context.Context) ([]models.Train, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+trainColumns+` FROM trains ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trains: %w", err)
	}
	defer rows.Close()

	var trains []models.Train
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, *t)
	}
	return trains, rows.Err()
}

// GetTrain looks a train up by id
func (s *Store) GetTrain(ctx context.Context, id int) (*models.Train, error) {
	t, err := scanTrain(s.db.QueryRowContext(ctx,
		`SELECT `+trainColumns+` FROM trains WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err, "train")
	}
	return t, nil
}

// GetTrainByNumber looks a train up by its number
func (s *Store) GetTrainByNumber(ctx context.Context, number string) (*models.Train, error) {
	t, err := scanTrain(s.db.QueryRowContext(ctx,
		`SELECT `+trainColumns+` FROM trains WHERE train_number = $1`, number))
	if err != nil {
		return nil, noRows(err, "train")
	}
	return t, nil
}

// CreateTrain inserts a train and sets its id
func (s *Store) CreateTrain(ctx context.Context, t *models.Train) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO trains (train_number, train_name, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, t.Number, t.Name, t.Status).Scan(&t.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("train number %s: %w", t.Number, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create train: %w", err)
	}
	return nil
}

// UpdateTrainName renames a train
func (s *Store) UpdateTrainName(ctx context.Context, id int, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE trains SET train_name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update train: %w", err)
	}
	return expectAffected(res, "train")
}

// SetTrainStatus flips a train between active and inactive
func (s *Store) SetTrainStatus(ctx context.Context, id int, status models.TrainStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE trains SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update train status: %w", err)
	}
	return expectAffected(res, "train")
}
