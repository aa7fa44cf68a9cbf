package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// PassengerService manages the travellers saved on a customer's account.
// Passengers are addressed by a stable id; list positions are only a view.
type PassengerService struct {
	store UserStore
	log   *logrus.Logger
}

func NewPassengerService(store UserStore, log *logrus.Logger) *PassengerService {
	return &PassengerService{store: store, log: log}
}

// ListPassengers returns a user's passengers in the order they were added
func (s *PassengerService) ListPassengers(ctx context.Context, userID int) ([]models.Passenger, error) {
	return s.store.ListPassengers(ctx, userID)
}

// AddPassenger appends a passenger and assigns it a new id
func (s *PassengerService) AddPassenger(ctx context.Context, userID int, req models.PassengerRequest) (*models.Passenger, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, lookup(err, "user %d", userID)
	}

	p, err := buildPassenger(req)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.UserID = userID

	if err := s.store.AddPassenger(ctx, p); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "passenger_id": p.ID}).Info("passenger added")
	return p, nil
}

// UpdatePassenger replaces a passenger's details, keeping id and position
func (s *PassengerService) UpdatePassenger(ctx context.Context, userID int, id string, req models.PassengerRequest) (*models.Passenger, error) {
	current, err := s.store.GetPassenger(ctx, userID, id)
	if err != nil {
		return nil, lookup(err, "passenger %s", id)
	}

	p, err := buildPassenger(req)
	if err != nil {
		return nil, err
	}
	p.ID = current.ID
	p.UserID = userID
	p.Position = current.Position

	if err := s.store.UpdatePassenger(ctx, p); err != nil {
		return nil, lookup(err, "passenger %s", id)
	}
	return p, nil
}

// RemovePassenger deletes a passenger by id
func (s *PassengerService) RemovePassenger(ctx context.Context, userID int, id string) error {
	if err := s.store.DeletePassenger(ctx, userID, id); err != nil {
		return lookup(err, "passenger %s", id)
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "passenger_id": id}).Info("passenger removed")
	return nil
}

// PassengerIDAt translates a 0-based position in the listed order into the
// passenger's stable id.
func (s *PassengerService) PassengerIDAt(ctx context.Context, userID, index int) (string, error) {
	passengers, err := s.store.ListPassengers(ctx, userID)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(passengers) {
		return "", invalid("passenger index %d out of range", index)
	}
	return passengers[index].ID, nil
}

func buildPassenger(req models.PassengerRequest) (*models.Passenger, error) {
	p := &models.Passenger{
		Name:     strings.TrimSpace(req.Name),
		DOB:      strings.TrimSpace(req.DOB),
		Gender:   strings.ToLower(strings.TrimSpace(req.Gender)),
		IDNumber: strings.TrimSpace(req.IDNumber),
		Mobile:   strings.TrimSpace(req.Mobile),
	}

	if err := check(p.Name, tagPersonName, "passenger name is required"); err != nil {
		return nil, err
	}
	if err := check(p.DOB, tagDate, "passenger date of birth must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	if err := check(p.Gender, tagGender, "gender must be male, female or other"); err != nil {
		return nil, err
	}
	if err := checkOptional(p.IDNumber, tagIDNumber, "id number must be up to 20 letters or digits"); err != nil {
		return nil, err
	}
	if err := checkOptional(p.Mobile, tagMobile, "mobile must be exactly 10 digits"); err != nil {
		return nil, err
	}
	return p, nil
}
