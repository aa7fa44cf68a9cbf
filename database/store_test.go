package database

import (
	"context"
	"database/sql"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinu2024/TrainBookingSystem/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func sampleBooking() (*models.Booking, *models.Payment) {
	b := &models.Booking{
		BookingCode:          "BK20260110AB12",
		UserID:               7,
		ScheduleID:           3,
		TrainID:              1,
		OriginStationID:      10,
		DestinationStationID: 20,
		TravelDate:           "2026-01-10",
		Fare:                 500,
		Status:               models.BookingStatusConfirmed,
	}
	p := &models.Payment{
		Amount:        500,
		Method:        "card",
		Status:        models.PaymentStatusSuccess,
		TransactionID: "txn-1",
	}
	return b, p
}

func TestCreateBookingWithPayment_Commits(t *testing.T) {
	store, mock := newMockStore(t)
	b, p := sampleBooking()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO bookings")).
		WithArgs("BK20260110AB12", 7, 3, 1, 10, 20, "2026-01-10", 500.0, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
	mock.ExpectQuery(q("INSERT INTO payments")).
		WithArgs(42, 500.0, "card", "success", "txn-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))
	mock.ExpectCommit()

	err := store.CreateBookingWithPayment(context.Background(), b, p)

	require.NoError(t, err)
	assert.Equal(t, 42, b.ID)
	assert.Equal(t, 42, p.BookingID)
	assert.Equal(t, 9, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingWithPayment_PaymentFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	b, p := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
	mock.ExpectQuery(q("INSERT INTO payments")).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := store.CreateBookingWithPayment(context.Background(), b, p)

	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingWithPayment_DuplicateCode(t *testing.T) {
	store, mock := newMockStore(t)
	b, p := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_booking_code_key"})
	mock.ExpectRollback()

	err := store.CreateBookingWithPayment(context.Background(), b, p)

	assert.ErrorIs(t, err, ErrDuplicateBookingCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingWithRefund(t *testing.T) {
	t.Run("confirmed booking is cancelled and refunded together", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("UPDATE bookings")).WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(q("UPDATE payments")).WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, store.CancelBookingWithRefund(context.Background(), 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already cancelled booking rolls back", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("UPDATE bookings")).WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.CancelBookingWithRefund(context.Background(), 42)

		assert.ErrorIs(t, err, ErrBookingNotConfirmed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refund failure leaves the booking confirmed", func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("UPDATE bookings")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(q("UPDATE payments")).WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := store.CancelBookingWithRefund(context.Background(), 42)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

var bookingColumns = []string{
	"id", "booking_code", "user_id", "username", "schedule_id",
	"train_id", "origin_station_id", "destination_station_id",
	"travel_date", "fare", "status", "created_at",
	"departure_date", "departure_time", "arrival_date", "arrival_time",
	"train_number", "train_name", "train_status",
	"o_code", "o_name", "o_city", "d_code", "d_name", "d_city",
	"p_id", "p_amount", "p_method", "p_status", "p_txn", "p_created_at",
}

func TestGetBookingByCode(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("WHERE b.booking_code = $1")).
		WithArgs("BK20260110AB12").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			42, "BK20260110AB12", 7, "alice", 3,
			1, 10, 20,
			"2026-01-10", 500.0, "confirmed", created,
			"2026-01-10", "08:00", "2026-01-10", "11:00",
			"123456", "Express", "active",
			"AAA111", "Alpha", "CityA", "BBB222", "Beta", "CityB",
			9, 500.0, "card", "success", "txn-1", created,
		))

	b, err := store.GetBookingByCode(context.Background(), "BK20260110AB12")

	require.NoError(t, err)
	assert.Equal(t, "alice", b.Username)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, 3, b.Schedule.ID)
	assert.Equal(t, "08:00", b.Schedule.DepartureTime)
	assert.Equal(t, "Alpha", b.Schedule.Origin.Name)
	assert.Equal(t, 10, b.Schedule.Origin.ID)
	assert.Equal(t, models.PaymentStatusSuccess, b.Payment.Status)
	assert.Equal(t, 42, b.Payment.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByCode_KeepsBookedFare(t *testing.T) {
	// The live schedule fare is never read; the joined schedule mirrors the
	// fare captured at booking time.
	assert.NotContains(t, bookingSelect, "s.fare")

	store, mock := newMockStore(t)
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q("WHERE b.booking_code = $1")).
		WithArgs("BK20260110AB12").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
			42, "BK20260110AB12", 7, "alice", 3,
			1, 10, 20,
			"2026-01-10", 500.0, "confirmed", created,
			"2026-01-10", "08:00", "2026-01-10", "11:00",
			"123456", "Express", "active",
			"AAA111", "Alpha", "CityA", "BBB222", "Beta", "CityB",
			9, 500.0, "card", "success", "txn-1", created,
		))

	b, err := store.GetBookingByCode(context.Background(), "BK20260110AB12")

	require.NoError(t, err)
	assert.Equal(t, 500.0, b.Fare)
	assert.Equal(t, b.Fare, b.Schedule.Fare)
	assert.Equal(t, b.Fare, b.Payment.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStation_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(q("FROM stations WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "city"}))

	_, err := store.GetStation(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrain_Duplicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(q("INSERT INTO trains")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := store.CreateTrain(context.Background(), &models.Train{Number: "123456", Name: "Express", Status: models.TrainStatusActive})

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTrainStatus_UnknownTrain(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(q("UPDATE trains SET status")).
		WithArgs("inactive", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.SetTrainStatus(context.Background(), 5, models.TrainStatusInactive)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSchedule_ForeignKey(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(q("DELETE FROM schedules")).
		WithArgs(3).
		WillReturnError(&pq.Error{Code: "23503"})

	err := store.DeleteSchedule(context.Background(), 3)

	assert.ErrorIs(t, err, ErrReferenced)
}

func TestCountScheduleBookings_MatchesIDOrTuple(t *testing.T) {
	store, mock := newMockStore(t)
	sc := models.Schedule{ID: 3, TrainID: 1, OriginStationID: 10, DestinationStationID: 20, DepartureDate: "2026-01-10"}

	mock.ExpectQuery(q("OR (train_id = $2")).
		WithArgs(3, 1, 10, 20, "2026-01-10").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := store.CountScheduleBookings(context.Background(), sc)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDeleteExpiredSessions(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(q("DELETE FROM sessions WHERE expires_at <= $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.DeleteExpiredSessions(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRunMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	require.NoError(t, RunMigrations(context.Background(), db, log))
	assert.NoError(t, mock.ExpectationsWereMet())
}
