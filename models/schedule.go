package models

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

// Schedule represents one dated journey of a train between two stations
type Schedule struct {
	ID                   int     `json:"id"`
	TrainID              int     `json:"train_id"`
	OriginStationID      int     `json:"origin_station_id"`
	DestinationStationID int     `json:"destination_station_id"`
	DepartureDate        string  `json:"departure_date"`
	DepartureTime        string  `json:"departure_time"`
	ArrivalDate          string  `json:"arrival_date"`
	ArrivalTime          string  `json:"arrival_time"`
	Fare                 float64 `json:"fare"`

	// Joined fields
	Train       Train   `json:"train"`
	Origin      Station `json:"origin"`
	Destination Station `json:"destination"`
}

// DepartureAt combines the departure date and time into an instant
func (s Schedule) DepartureAt(loc *time.Location) (time.Time, error) {
	return ParseDateTime(s.DepartureDate, s.DepartureTime, loc)
}

// ArrivalAt combines the arrival date and time into an instant
func (s Schedule) ArrivalAt(loc *time.Location) (time.Time, error) {
	return ParseDateTime(s.ArrivalDate, s.ArrivalTime, loc)
}

// ParseDateTime parses a YYYY-MM-DD date and HH:MM time in loc
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, clock)
	}
	return t, nil
}

// ScheduleRequest represents a schedule create or update request
type ScheduleRequest struct {
	TrainID              int     `json:"train_id" binding:"required"`
	OriginStationID      int     `json:"origin_station_id" binding:"required"`
	DestinationStationID int     `json:"destination_station_id" binding:"required"`
	DepartureDate        string  `json:"departure_date" binding:"required"`
	DepartureTime        string  `json:"departure_time" binding:"required"`
	ArrivalDate          string  `json:"arrival_date" binding:"required"`
	ArrivalTime          string  `json:"arrival_time" binding:"required"`
	Fare                 float64 `json:"fare" binding:"required"`
}

// SearchRequest represents a route/date schedule lookup
type SearchRequest struct {
	OriginStationID      int    `form:"origin" binding:"required"`
	DestinationStationID int    `form:"destination" binding:"required"`
	Date                 string `form:"date" binding:"required"`
}
