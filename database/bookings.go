package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jinu2024/TrainBookingSystem/models"
)

const bookingSelect = `
	SELECT b.id, b.booking_code, b.user_id, u.username, COALESCE(b.schedule_id, 0),
	       b.train_id, b.origin_station_id, b.destination_station_id,
	       to_char(b.travel_date, 'YYYY-MM-DD'), b.fare, b.status, b.created_at,
	       COALESCE(to_char(s.departure_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(s.departure_time, 'HH24:MI'), ''),
	       COALESCE(to_char(s.arrival_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(s.arrival_time, 'HH24:MI'), ''),
	       t.train_number, t.train_name, t.status,
	       o.code, o.name, o.city,
	       d.code, d.name, d.city,
	       COALESCE(p.id, 0), COALESCE(p.amount, 0), COALESCE(p.method, ''), COALESCE(p.status, ''),
	       COALESCE(p.transaction_id, ''), COALESCE(p.created_at, b.created_at)
	FROM bookings b
	JOIN users u ON b.user_id = u.id
	JOIN trains t ON b.train_id = t.id
	JOIN stations o ON b.origin_station_id = o.id
	JOIN stations d ON b.destination_station_id = d.id
	LEFT JOIN schedules s ON b.schedule_id = s.id
	LEFT JOIN payments p ON p.booking_id = b.id`

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	sc := &b.Schedule
	pay := &b.Payment
	err := row.Scan(
		&b.ID, &b.BookingCode, &b.UserID, &b.Username, &b.ScheduleID,
		&b.TrainID, &b.OriginStationID, &b.DestinationStationID,
		&b.TravelDate, &b.Fare, &b.Status, &b.CreatedAt,
		&sc.DepartureDate, &sc.DepartureTime,
		&sc.ArrivalDate, &sc.ArrivalTime,
		&sc.Train.Number, &sc.Train.Name, &sc.Train.Status,
		&sc.Origin.Code, &sc.Origin.Name, &sc.Origin.City,
		&sc.Destination.Code, &sc.Destination.Name, &sc.Destination.City,
		&pay.ID, &pay.Amount, &pay.Method, &pay.Status,
		&pay.TransactionID, &pay.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sc.ID = b.ScheduleID
	sc.TrainID = b.TrainID
	sc.OriginStationID = b.OriginStationID
	sc.DestinationStationID = b.DestinationStationID
	sc.Fare = b.Fare
	sc.Train.ID = b.TrainID
	sc.Origin.ID = b.OriginStationID
	sc.Destination.ID = b.DestinationStationID
	pay.BookingID = b.ID
	return &b, nil
}

// CreateBookingWithPayment inserts a booking and its payment in one
// transaction. Either both rows are committed or neither is.
func (s *Store) CreateBookingWithPayment(ctx context.Context, b *models.Booking, p *models.Payment) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO bookings (booking_code, user_id, schedule_id, train_id,
			                      origin_station_id, destination_station_id, travel_date, fare, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`, b.BookingCode, b.UserID, b.ScheduleID, b.TrainID,
			b.OriginStationID, b.DestinationStationID, b.TravelDate, b.Fare, b.Status).Scan(&b.ID, &b.CreatedAt)
		if isUniqueViolation(err) {
			return fmt.Errorf("booking code %s: %w", b.BookingCode, ErrDuplicateBookingCode)
		}
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		p.BookingID = b.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO payments (booking_id, amount, method, status, transaction_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, p.BookingID, p.Amount, p.Method, p.Status, p.TransactionID).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return nil
	})
}

// GetBookingByCode looks a booking up with its schedule, stations and payment
func (s *Store) GetBookingByCode(ctx context.Context, code string) (*models.Booking, error) {
	b, err := scanBooking(s.db.QueryRowContext(ctx, bookingSelect+` WHERE b.booking_code = $1`, code))
	if err != nil {
		return nil, noRows(err, "booking")
	}
	return b, nil
}

// ListBookingsByUser returns a user's bookings, most recent first
func (s *Store) ListBookingsByUser(ctx context.Context, userID int) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx, bookingSelect+`
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// CancelBookingWithRefund moves a confirmed booking to cancelled and its
// payment to refunded in one transaction. A booking that is no longer
// confirmed yields ErrBookingNotConfirmed and nothing changes.
func (s *Store) CancelBookingWithRefund(ctx context.Context, bookingID int) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE bookings
			SET status = 'cancelled'
			WHERE id = $1 AND status = 'confirmed'
		`, bookingID)
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		if err := expectAffected(res, "booking"); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("booking %d: %w", bookingID, ErrBookingNotConfirmed)
			}
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE payments
			SET status = 'refunded'
			WHERE booking_id = $1 AND status = 'success'
		`, bookingID); err != nil {
			return fmt.Errorf("failed to refund payment: %w", err)
		}
		return nil
	})
}
