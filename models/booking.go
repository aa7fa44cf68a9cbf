package models

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation against one schedule
type Booking struct {
	ID                   int           `json:"id"`
	BookingCode          string        `json:"booking_code"`
	UserID               int           `json:"user_id"`
	ScheduleID           int           `json:"schedule_id"`
	TrainID              int           `json:"train_id"`
	OriginStationID      int           `json:"origin_station_id"`
	DestinationStationID int           `json:"destination_station_id"`
	TravelDate           string        `json:"travel_date"`
	Fare                 float64       `json:"fare"`
	Status               BookingStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`

	// Joined fields
	Username string   `json:"username"`
	Schedule Schedule `json:"schedule"`
	Payment  Payment  `json:"payment"`
}

// BookingRequest represents a booking creation request
type BookingRequest struct {
	TrainID              int    `json:"train_id" binding:"required"`
	OriginStationID      int    `json:"origin_station_id" binding:"required"`
	DestinationStationID int    `json:"destination_station_id" binding:"required"`
	TravelDate           string `json:"travel_date" binding:"required"`
	PaymentMethod        string `json:"payment_method" binding:"required"`
}

// Trip identifies the journey a customer wants to book
type Trip struct {
	TrainID              int
	OriginStationID      int
	DestinationStationID int
	TravelDate           string
}

// Trip returns the journey part of the request
func (r BookingRequest) Trip() Trip {
	return Trip{
		TrainID:              r.TrainID,
		OriginStationID:      r.OriginStationID,
		DestinationStationID: r.DestinationStationID,
		TravelDate:           r.TravelDate,
	}
}

// BookingSummary is returned after a successful booking
type BookingSummary struct {
	BookingID     int           `json:"booking_id"`
	BookingCode   string        `json:"booking_code"`
	Username      string        `json:"username"`
	TrainNumber   string        `json:"train_number"`
	TrainName     string        `json:"train_name"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	TravelDate    string        `json:"travel_date"`
	DepartureDate string        `json:"departure_date"`
	DepartureTime string        `json:"departure_time"`
	ArrivalDate   string        `json:"arrival_date"`
	ArrivalTime   string        `json:"arrival_time"`
	Fare          float64       `json:"fare"`
	Status        BookingStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
}

// Cancellation describes the refund computed for a cancelled booking
type Cancellation struct {
	BookingCode    string  `json:"booking_code"`
	OriginalAmount float64 `json:"original_amount"`
	RefundAmount   float64 `json:"refund_amount"`
	Deduction      float64 `json:"deduction"`
	HoursRemaining float64 `json:"hours_remaining"`
}

// Ticket is the flattened booking record handed to ticket renderers
type Ticket struct {
	BookingCode        string        `json:"booking_code"`
	Username           string        `json:"username"`
	TrainNumber        string        `json:"train_number"`
	TrainName          string        `json:"train_name"`
	OriginStation      string        `json:"origin_station"`
	DestinationStation string        `json:"destination_station"`
	DepartureDate      string        `json:"departure_date"`
	DepartureTime      string        `json:"departure_time"`
	ArrivalDate        string        `json:"arrival_date"`
	ArrivalTime        string        `json:"arrival_time"`
	Fare               float64       `json:"fare"`
	BookingStatus      BookingStatus `json:"booking_status"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	TransactionID      string        `json:"transaction_id"`
	GeneratedAt        time.Time     `json:"generated_at"`
}
