package models

import "time"

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment is the payment record paired one-to-one with a booking
type Payment struct {
	ID            int           `json:"id"`
	BookingID     int           `json:"booking_id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PaymentResult is what the payment gateway reports for a processed payment
type PaymentResult struct {
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
}
