package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// Store is a testify mock of every persistence interface the services use
type Store struct {
	mock.Mock
}

// Stations

func (m *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	args := m.Called(ctx)
	stations, _ := args.Get(0).([]models.Station)
	return stations, args.Error(1)
}

func (m *Store) GetStation(ctx context.Context, id int) (*models.Station, error) {
	args := m.Called(ctx, id)
	st, _ := args.Get(0).(*models.Station)
	return st, args.Error(1)
}

func (m *Store) GetStationByCode(ctx context.Context, code string) (*models.Station, error) {
	args := m.Called(ctx, code)
	st, _ := args.Get(0).(*models.Station)
	return st, args.Error(1)
}

func (m *Store) CreateStation(ctx context.Context, st *models.Station) error {
	return m.Called(ctx, st).Error(0)
}

func (m *Store) UpdateStation(ctx context.Context, id int, name, city string) error {
	return m.Called(ctx, id, name, city).Error(0)
}

// Trains

func (m *Store) ListTrains(ctx context.Context) ([]models.Train, error) {
	args := m.Called(ctx)
	trains, _ := args.Get(0).([]models.Train)
	return trains, args.Error(1)
}

func (m *Store) GetTrain(ctx context.Context, id int) (*models.Train, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Train)
	return t, args.Error(1)
}

func (m *Store) GetTrainByNumber(ctx context.Context, number string) (*models.Train, error) {
	args := m.Called(ctx, number)
	t, _ := args.Get(0).(*models.Train)
	return t, args.Error(1)
}

func (m *Store) CreateTrain(ctx context.Context, t *models.Train) error {
	return m.Called(ctx, t).Error(0)
}

func (m *Store) UpdateTrainName(ctx context.Context, id int, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *Store) SetTrainStatus(ctx context.Context, id int, status models.TrainStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// Schedules

func (m *Store) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	args := m.Called(ctx)
	schedules, _ := args.Get(0).([]models.Schedule)
	return schedules, args.Error(1)
}

func (m *Store) FindSchedules(ctx context.Context, originID, destinationID int, date string) ([]models.Schedule, error) {
	args := m.Called(ctx, originID, destinationID, date)
	schedules, _ := args.Get(0).([]models.Schedule)
	return schedules, args.Error(1)
}

func (m *Store) ListSchedulesByTrain(ctx context.Context, trainID int) ([]models.Schedule, error) {
	args := m.Called(ctx, trainID)
	schedules, _ := args.Get(0).([]models.Schedule)
	return schedules, args.Error(1)
}

func (m *Store) GetSchedule(ctx context.Context, id int) (*models.Schedule, error) {
	args := m.Called(ctx, id)
	sc, _ := args.Get(0).(*models.Schedule)
	return sc, args.Error(1)
}

func (m *Store) CreateSchedule(ctx context.Context, sc *models.Schedule) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *Store) UpdateSchedule(ctx context.Context, sc *models.Schedule) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *Store) CountScheduleBookings(ctx context.Context, sc models.Schedule) (int, error) {
	args := m.Called(ctx, sc)
	return args.Int(0), args.Error(1)
}

func (m *Store) DeleteSchedule(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// Users and passengers

func (m *Store) CreateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *Store) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	args := m.Called(ctx, mobile)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *Store) UpdateProfile(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *Store) SetUserStatus(ctx context.Context, id int, status models.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *Store) ListPassengers(ctx context.Context, userID int) ([]models.Passenger, error) {
	args := m.Called(ctx, userID)
	passengers, _ := args.Get(0).([]models.Passenger)
	return passengers, args.Error(1)
}

func (m *Store) GetPassenger(ctx context.Context, userID int, id string) (*models.Passenger, error) {
	args := m.Called(ctx, userID, id)
	p, _ := args.Get(0).(*models.Passenger)
	return p, args.Error(1)
}

func (m *Store) AddPassenger(ctx context.Context, p *models.Passenger) error {
	return m.Called(ctx, p).Error(0)
}

func (m *Store) UpdatePassenger(ctx context.Context, p *models.Passenger) error {
	return m.Called(ctx, p).Error(0)
}

func (m *Store) DeletePassenger(ctx context.Context, userID int, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

// Sessions

func (m *Store) CreateSession(ctx context.Context, ss *models.Session) error {
	return m.Called(ctx, ss).Error(0)
}

func (m *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	ss, _ := args.Get(0).(*models.Session)
	return ss, args.Error(1)
}

func (m *Store) LatestCustomerSession(ctx context.Context, now time.Time) (*models.Session, error) {
	args := m.Called(ctx, now)
	ss, _ := args.Get(0).(*models.Session)
	return ss, args.Error(1)
}

func (m *Store) DeleteSession(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// Bookings

func (m *Store) CreateBookingWithPayment(ctx context.Context, b *models.Booking, p *models.Payment) error {
	return m.Called(ctx, b, p).Error(0)
}

func (m *Store) GetBookingByCode(ctx context.Context, code string) (*models.Booking, error) {
	args := m.Called(ctx, code)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *Store) ListBookingsByUser(ctx context.Context, userID int) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *Store) CancelBookingWithRefund(ctx context.Context, bookingID int) error {
	return m.Called(ctx, bookingID).Error(0)
}
