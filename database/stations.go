package database

import (
	"context"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const stationColumns = `id, code, name, city`

func scanStation(row rowScanner) (*models.Station, error) {
	var st models.Station
	if err := row.Scan(&st.ID, &st.Code, &st.Name, &st.City); err != nil {
		return nil, err
	}
	return &st, nil
}

// ListStations returns every station ordered by id
func (s *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+stationColumns+` FROM stations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, *st)
	}
	return stations, rows.Err()
}

// GetStation looks a station up by id
func (s *Store) GetStation(ctx context.Context, id int) (*models.Station, error) {
	st, err := scanStation(s.db.QueryRowContext(ctx,
		`SELECT `+stationColumns+` FROM stations WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err, "station")
	}
	return st, nil
}

// GetStationByCode looks a station up by its code
func (s *Store) GetStationByCode(ctx context.Context, code string) (*models.Station, error) {
	st, err := scanStation(s.db.QueryRowContext(ctx,
		`SELECT `+stationColumns+` FROM stations WHERE code = $1`, code))
	if err != nil {
		return nil, noRows(err, "station")
	}
	return st, nil
}

// CreateStation inserts a station and sets its id
func (s *Store) CreateStation(ctx context.Context, st *models.Station) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO stations (code, name, city)
		VALUES ($1, $2, $3)
		RETURNING id
	`, st.Code, st.Name, st.City).Scan(&st.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("station code %s: %w", st.Code, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

// UpdateStation changes the name and city of a station
func (s *Store) UpdateStation(ctx context.Context, id int, name, city string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE stations SET name = $1, city = $2 WHERE id = $3`, name, city, id)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}
	return expectAffected(res, "station")
}
