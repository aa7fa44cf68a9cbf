package database

import (
	"context"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const scheduleSelect = `
	SELECT s.id, s.train_id, s.origin_station_id, s.destination_station_id,
	       to_char(s.departure_date, 'YYYY-MM-DD'), to_char(s.departure_time, 'HH24:MI'),
	       to_char(s.arrival_date, 'YYYY-MM-DD'), to_char(s.arrival_time, 'HH24:MI'),
	       s.fare,
	       t.id, t.train_number, t.train_name, t.status,
	       o.id, o.code, o.name, o.city,
	       d.id, d.code, d.name, d.city
	FROM schedules s
	JOIN trains t ON s.train_id = t.id
	JOIN stations o ON s.origin_station_id = o.id
	JOIN stations d ON s.destination_station_id = d.id`

func scanSchedule(row rowScanner) (*models.Schedule, error) {
	var sc models.Schedule
	err := row.Scan(
		&sc.ID, &sc.TrainID, &sc.OriginStationID, &sc.DestinationStationID,
		&sc.DepartureDate, &sc.DepartureTime,
		&sc.ArrivalDate, &sc.ArrivalTime,
		&sc.Fare,
		&sc.Train.ID, &sc.Train.Number, &sc.Train.Name, &sc.Train.Status,
		&sc.Origin.ID, &sc.Origin.Code, &sc.Origin.Name, &sc.Origin.City,
		&sc.Destination.ID, &sc.Destination.Code, &sc.Destination.Name, &sc.Destination.City,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Store) querySchedules(ctx context.Context, query string, args ...any) ([]models.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, *sc)
	}
	return schedules, rows.Err()
}

// ListSchedules returns every schedule ordered by id
func (s *Store) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.querySchedules(ctx, scheduleSelect+` ORDER BY s.id`)
}

// FindSchedules returns the schedules of active trains on a route and date
func (s *Store) FindSchedules(ctx context.Context, originID, destinationID int, date string) ([]models.Schedule, error) {
	return s.querySchedules(ctx, scheduleSelect+`
		WHERE s.origin_station_id = $1
		  AND s.destination_station_id = $2
		  AND s.departure_date = $3
		  AND t.status = 'active'
		ORDER BY s.departure_time, s.id`, originID, destinationID, date)
}

// ListSchedulesByTrain returns one train's schedules in departure order
func (s *Store) ListSchedulesByTrain(ctx context.Context, trainID int) ([]models.Schedule, error) {
	return s.querySchedules(ctx, scheduleSelect+`
		WHERE s.train_id = $1
		ORDER BY s.departure_date, s.departure_time, s.id`, trainID)
}

// GetSchedule looks a schedule up by id
func (s *Store) GetSchedule(ctx context.Context, id int) (*models.Schedule, error) {
	sc, err := scanSchedule(s.db.QueryRowContext(ctx, scheduleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, noRows(err, "schedule")
	}
	return sc, nil
}

// CreateSchedule inserts a schedule and sets its id
func (s *Store) CreateSchedule(ctx context.Context, sc *models.Schedule) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO schedules (train_id, origin_station_id, destination_station_id,
		                       departure_date, departure_time, arrival_date, arrival_time, fare)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, sc.TrainID, sc.OriginStationID, sc.DestinationStationID,
		sc.DepartureDate, sc.DepartureTime, sc.ArrivalDate, sc.ArrivalTime, sc.Fare).Scan(&sc.ID)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// UpdateSchedule overwrites every mutable field of a schedule
func (s *Store) UpdateSchedule(ctx context.Context, sc *models.Schedule) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE schedules
		SET train_id = $1, origin_station_id = $2, destination_station_id = $3,
		    departure_date = $4, departure_time = $5, arrival_date = $6, arrival_time = $7, fare = $8
		WHERE id = $9
	`, sc.TrainID, sc.OriginStationID, sc.DestinationStationID,
		sc.DepartureDate, sc.DepartureTime, sc.ArrivalDate, sc.ArrivalTime, sc.Fare, sc.ID)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return expectAffected(res, "schedule")
}

// CountScheduleBookings counts the bookings that reference a schedule, either
// by id or by its (train, origin, destination, departure date) tuple.
func (s *Store) CountScheduleBookings(ctx context.Context, sc models.Schedule) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE schedule_id = $1
		   OR (train_id = $2 AND origin_station_id = $3 AND destination_station_id = $4 AND travel_date = $5)
	`, sc.ID, sc.TrainID, sc.OriginStationID, sc.DestinationStationID, sc.DepartureDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count schedule bookings: %w", err)
	}
	return count, nil
}

// DeleteSchedule removes a schedule row
func (s *Store) DeleteSchedule(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("schedule %d: %w", id, ErrReferenced)
	}
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return expectAffected(res, "schedule")
}
