package services

import (
	"context"
	"time"

	"github.com/jinu2024/TrainBookingSystem/models"
)

type stationReader interface {
	GetStation(ctx context.Context, id int) (*models.Station, error)
}

type trainReader interface {
	GetTrain(ctx context.Context, id int) (*models.Train, error)
}

type userReader interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type scheduleFinder interface {
	FindSchedules(ctx context.Context, originID, destinationID int, date string) ([]models.Schedule, error)
}

// CatalogStore is the persistence the catalog needs
type CatalogStore interface {
	stationReader
	trainReader
	ListStations(ctx context.Context) ([]models.Station, error)
	GetStationByCode(ctx context.Context, code string) (*models.Station, error)
	CreateStation(ctx context.Context, st *models.Station) error
	UpdateStation(ctx context.Context, id int, name, city string) error
	ListTrains(ctx context.Context) ([]models.Train, error)
	GetTrainByNumber(ctx context.Context, number string) (*models.Train, error)
	CreateTrain(ctx context.Context, t *models.Train) error
	UpdateTrainName(ctx context.Context, id int, name string) error
	SetTrainStatus(ctx context.Context, id int, status models.TrainStatus) error
}

// ScheduleStore is the persistence the schedule engine needs
type ScheduleStore interface {
	stationReader
	trainReader
	scheduleFinder
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	ListSchedulesByTrain(ctx context.Context, trainID int) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id int) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, sc *models.Schedule) error
	UpdateSchedule(ctx context.Context, sc *models.Schedule) error
	CountScheduleBookings(ctx context.Context, sc models.Schedule) (int, error)
	DeleteSchedule(ctx context.Context, id int) error
}

// BookingStore is the persistence the booking engine needs
type BookingStore interface {
	trainReader
	userReader
	scheduleFinder
	CreateBookingWithPayment(ctx context.Context, b *models.Booking, p *models.Payment) error
	GetBookingByCode(ctx context.Context, code string) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int) ([]models.Booking, error)
	CancelBookingWithRefund(ctx context.Context, bookingID int) error
}

// SessionStore is the persistence the session engine needs
type SessionStore interface {
	CreateSession(ctx context.Context, ss *models.Session) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	LatestCustomerSession(ctx context.Context, now time.Time) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// UserStore is the persistence identity and passenger management need
type UserStore interface {
	userReader
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateProfile(ctx context.Context, u *models.User) error
	SetUserStatus(ctx context.Context, id int, status models.UserStatus) error
	ListPassengers(ctx context.Context, userID int) ([]models.Passenger, error)
	GetPassenger(ctx context.Context, userID int, id string) (*models.Passenger, error)
	AddPassenger(ctx context.Context, p *models.Passenger) error
	UpdatePassenger(ctx context.Context, p *models.Passenger) error
	DeletePassenger(ctx context.Context, userID int, id string) error
}
