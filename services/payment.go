package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// PaymentGateway processes a payment before a booking is recorded
type PaymentGateway interface {
	Process(ctx context.Context, amount float64, method string) (*models.PaymentResult, error)
}

var supportedPaymentMethods = map[string]bool{
	"card":       true,
	"upi":        true,
	"netbanking": true,
}

// MockGateway approves every well-formed payment without calling out
type MockGateway struct{}

func (MockGateway) Process(ctx context.Context, amount float64, method string) (*models.PaymentResult, error) {
	if amount <= 0 {
		return nil, invalid("payment amount must be positive")
	}

	method = strings.ToLower(strings.TrimSpace(method))
	if !supportedPaymentMethods[method] {
		return nil, invalid("unsupported payment method %q", method)
	}

	return &models.PaymentResult{
		Amount:        amount,
		Method:        method,
		TransactionID: "TXN" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")),
		Status:        models.PaymentStatusSuccess,
	}, nil
}
