package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
)

const (
	MinFare            = 50
	MaxFare            = 400000
	MinJourneyDuration = 30 * time.Minute
	MaxJourneyDuration = 31 * 24 * time.Hour
)

// ScheduleService creates, edits and answers queries about train journeys
type ScheduleService struct {
	store ScheduleStore
	log   *logrus.Logger
	loc   *time.Location
}

func NewScheduleService(store ScheduleStore, log *logrus.Logger) *ScheduleService {
	return &ScheduleService{store: store, log: log, loc: time.Local}
}

// ListSchedules returns every schedule in id order
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	return s.store.ListSchedules(ctx)
}

// GetSchedule returns one schedule with its train and stations
func (s *ScheduleService) GetSchedule(ctx context.Context, id int) (*models.Schedule, error) {
	sc, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return nil, lookup(err, "schedule %d", id)
	}
	return sc, nil
}

// FindSchedules returns the active-train schedules on a route for one date
func (s *ScheduleService) FindSchedules(ctx context.Context, originID, destinationID int, date string) ([]models.Schedule, error) {
	if err := check(date, tagDate, "date must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	return s.store.FindSchedules(ctx, originID, destinationID, date)
}

// GetSchedulesByTrain returns one train's schedules ordered by departure
func (s *ScheduleService) GetSchedulesByTrain(ctx context.Context, trainID int) ([]models.Schedule, error) {
	if _, err := s.store.GetTrain(ctx, trainID); err != nil {
		return nil, lookup(err, "train %d", trainID)
	}
	return s.store.ListSchedulesByTrain(ctx, trainID)
}

// CreateSchedule validates and stores a new journey
func (s *ScheduleService) CreateSchedule(ctx context.Context, req models.ScheduleRequest) (*models.Schedule, error) {
	sc, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateSchedule(ctx, sc); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"schedule_id":  sc.ID,
		"train_number": sc.Train.Number,
		"departure":    sc.DepartureDate + " " + sc.DepartureTime,
	}).Info("schedule created")
	return sc, nil
}

// UpdateSchedule re-runs every create check against the new values and
// then overwrites the schedule in place.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id int, req models.ScheduleRequest) (*models.Schedule, error) {
	if _, err := s.store.GetSchedule(ctx, id); err != nil {
		return nil, lookup(err, "schedule %d", id)
	}

	sc, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	sc.ID = id

	if err := s.store.UpdateSchedule(ctx, sc); err != nil {
		return nil, lookup(err, "schedule %d", id)
	}

	s.log.WithField("schedule_id", id).Info("schedule updated")
	return sc, nil
}

// DeleteSchedule removes a schedule that no booking references
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int) error {
	sc, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return lookup(err, "schedule %d", id)
	}

	count, err := s.store.CountScheduleBookings(ctx, *sc)
	if err != nil {
		return err
	}
	if count > 0 {
		return conflict("cannot delete schedule with existing bookings")
	}

	if err := s.store.DeleteSchedule(ctx, id); err != nil {
		if errors.Is(err, database.ErrReferenced) {
			return conflict("cannot delete schedule with existing bookings")
		}
		return lookup(err, "schedule %d", id)
	}

	s.log.WithField("schedule_id", id).Info("schedule deleted")
	return nil
}

// validate applies the schedule checks in order: fare, instants, duration,
// train, stations. It returns the schedule ready to persist.
func (s *ScheduleService) validate(ctx context.Context, req models.ScheduleRequest) (*models.Schedule, error) {
	if req.Fare < MinFare || req.Fare > MaxFare {
		return nil, invalid("fare must be between %d and %d", MinFare, MaxFare)
	}

	if err := check(req.DepartureDate, tagDate, "departure date must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	if err := check(req.DepartureTime, tagClock, "departure time must be HH:MM"); err != nil {
		return nil, err
	}
	if err := check(req.ArrivalDate, tagDate, "arrival date must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	if err := check(req.ArrivalTime, tagClock, "arrival time must be HH:MM"); err != nil {
		return nil, err
	}

	sc := &models.Schedule{
		DepartureDate: req.DepartureDate,
		DepartureTime: req.DepartureTime,
		ArrivalDate:   req.ArrivalDate,
		ArrivalTime:   req.ArrivalTime,
		Fare:          req.Fare,
	}

	departure, err := sc.DepartureAt(s.loc)
	if err != nil {
		return nil, invalid("%v", err)
	}
	arrival, err := sc.ArrivalAt(s.loc)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if !arrival.After(departure) {
		return nil, invalid("arrival must be after departure")
	}

	duration := arrival.Sub(departure)
	if duration < MinJourneyDuration {
		return nil, invalid("journey must last at least 30 minutes")
	}
	if duration > MaxJourneyDuration {
		return nil, invalid("journey cannot last more than 31 days")
	}

	train, err := s.store.GetTrain(ctx, req.TrainID)
	if err != nil {
		return nil, lookup(err, "train %d", req.TrainID)
	}
	if !train.IsActive() {
		return nil, missing("active train %d", req.TrainID)
	}

	origin, err := s.store.GetStation(ctx, req.OriginStationID)
	if err != nil {
		return nil, lookup(err, "origin station %d", req.OriginStationID)
	}
	destination, err := s.store.GetStation(ctx, req.DestinationStationID)
	if err != nil {
		return nil, lookup(err, "destination station %d", req.DestinationStationID)
	}
	if origin.ID == destination.ID {
		return nil, invalid("origin and destination must differ")
	}

	sc.TrainID = train.ID
	sc.OriginStationID = origin.ID
	sc.DestinationStationID = destination.ID
	sc.Train = *train
	sc.Origin = *origin
	sc.Destination = *destination
	return sc, nil
}
