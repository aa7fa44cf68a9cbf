package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
)

// CatalogService manages trains and stations
type CatalogService struct {
	store CatalogStore
	log   *logrus.Logger
}

func NewCatalogService(store CatalogStore, log *logrus.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

// ListTrains returns every train in id order, inactive ones included
func (s *CatalogService) ListTrains(ctx context.Context) ([]models.Train, error) {
	return s.store.ListTrains(ctx)
}

// AddTrain registers a new active train
func (s *CatalogService) AddTrain(ctx context.Context, number, name string) (*models.Train, error) {
	number = strings.TrimSpace(number)
	name = strings.TrimSpace(name)

	if err := check(number, tagTrainNumber, "train number must be exactly 6 digits"); err != nil {
		return nil, err
	}
	if err := check(name, tagTrainName, "train name must be letters, digits and spaces only"); err != nil {
		return nil, err
	}

	_, err := s.store.GetTrainByNumber(ctx, number)
	switch {
	case err == nil:
		return nil, invalid("train number %s already exists", number)
	case !errors.Is(err, database.ErrNotFound):
		return nil, err
	}

	train := &models.Train{Number: number, Name: name, Status: models.TrainStatusActive}
	if err := s.store.CreateTrain(ctx, train); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, invalid("train number %s already exists", number)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"train_id": train.ID, "train_number": number}).Info("train added")
	return train, nil
}

// UpdateTrain renames a train
func (s *CatalogService) UpdateTrain(ctx context.Context, id int, name string) (*models.Train, error) {
	name = strings.TrimSpace(name)
	if err := check(name, tagTrainName, "train name must be letters, digits and spaces only"); err != nil {
		return nil, err
	}

	train, err := s.store.GetTrain(ctx, id)
	if err != nil {
		return nil, lookup(err, "train %d", id)
	}

	if err := s.store.UpdateTrainName(ctx, id, name); err != nil {
		return nil, lookup(err, "train %d", id)
	}
	train.Name = name

	s.log.WithField("train_id", id).Info("train updated")
	return train, nil
}

// RemoveTrain soft-deletes a train. Its schedules and bookings stay in place.
func (s *CatalogService) RemoveTrain(ctx context.Context, id int) error {
	return s.setTrainStatus(ctx, id, models.TrainStatusInactive)
}

// ReactivateTrain undoes RemoveTrain
func (s *CatalogService) ReactivateTrain(ctx context.Context, id int) error {
	return s.setTrainStatus(ctx, id, models.TrainStatusActive)
}

func (s *CatalogService) setTrainStatus(ctx context.Context, id int, status models.TrainStatus) error {
	train, err := s.store.GetTrain(ctx, id)
	if err != nil {
		return lookup(err, "train %d", id)
	}
	if train.Status == status {
		return nil
	}

	if err := s.store.SetTrainStatus(ctx, id, status); err != nil {
		return lookup(err, "train %d", id)
	}

	s.log.WithFields(logrus.Fields{"train_id": id, "status": status}).Info("train status changed")
	return nil
}

// ListStations returns every station in id order
func (s *CatalogService) ListStations(ctx context.Context) ([]models.Station, error) {
	return s.store.ListStations(ctx)
}

// AddStation registers a station; the code is trimmed and upper-cased
func (s *CatalogService) AddStation(ctx context.Context, code, name, city string) (*models.Station, error) {
	code = normalizeStationCode(code)
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	if err := check(code, tagStationCode, "station code must be exactly 6 letters or digits"); err != nil {
		return nil, err
	}
	if err := validatePlace(name, city); err != nil {
		return nil, err
	}

	_, err := s.store.GetStationByCode(ctx, code)
	switch {
	case err == nil:
		return nil, invalid("station code %s already exists", code)
	case !errors.Is(err, database.ErrNotFound):
		return nil, err
	}

	station := &models.Station{Code: code, Name: name, City: city}
	if err := s.store.CreateStation(ctx, station); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, invalid("station code %s already exists", code)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"station_id": station.ID, "code": code}).Info("station added")
	return station, nil
}

// UpdateStation changes a station's name and city; its code is immutable
func (s *CatalogService) UpdateStation(ctx context.Context, id int, name, city string) (*models.Station, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if err := validatePlace(name, city); err != nil {
		return nil, err
	}

	station, err := s.store.GetStation(ctx, id)
	if err != nil {
		return nil, lookup(err, "station %d", id)
	}

	if err := s.store.UpdateStation(ctx, id, name, city); err != nil {
		return nil, lookup(err, "station %d", id)
	}
	station.Name = name
	station.City = city

	s.log.WithField("station_id", id).Info("station updated")
	return station, nil
}

func validatePlace(name, city string) error {
	if err := check(name, tagPlaceName, "station name is required"); err != nil {
		return err
	}
	return check(city, tagPlaceName, "station city is required")
}
