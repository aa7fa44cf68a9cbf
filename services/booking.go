package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
)

const (
	bookingCodePrefix   = "BK"
	bookingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	bookingCodeAttempts = 5

	// FullRefundWindow is how long before departure a cancellation still gets
	// all of its fare back.
	FullRefundWindow = 6 * time.Hour
	// LateCancellationRate is the share of the fare kept on late cancellations
	LateCancellationRate = 0.10
)

// BookingService turns a paid trip selection into a booking and cancels it
// with a time-based refund.
type BookingService struct {
	store   BookingStore
	gateway PaymentGateway
	log     *logrus.Logger
	now     func() time.Time
	loc     *time.Location
	newCode func(time.Time) string
}

func NewBookingService(store BookingStore, gateway PaymentGateway, log *logrus.Logger) *BookingService {
	return &BookingService{
		store:   store,
		gateway: gateway,
		log:     log,
		now:     time.Now,
		loc:     time.Local,
		newCode: generateBookingCode,
	}
}

func generateBookingCode(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = bookingCodeAlphabet[rand.Intn(len(bookingCodeAlphabet))]
	}
	return bookingCodePrefix + now.Format("20060102") + string(suffix)
}

// ResolveSchedule finds the schedule a trip refers to. The train must exist
// and be active; when it runs the route more than once that day the
// earliest departure wins.
func (s *BookingService) ResolveSchedule(ctx context.Context, trip models.Trip) (*models.Schedule, error) {
	if err := check(trip.TravelDate, tagDate, "travel date must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	if trip.OriginStationID == trip.DestinationStationID {
		return nil, invalid("origin and destination must differ")
	}

	train, err := s.store.GetTrain(ctx, trip.TrainID)
	if err != nil {
		return nil, lookup(err, "train %d", trip.TrainID)
	}
	if !train.IsActive() {
		return nil, missing("active train %d", trip.TrainID)
	}

	schedules, err := s.store.FindSchedules(ctx, trip.OriginStationID, trip.DestinationStationID, trip.TravelDate)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		if schedules[i].TrainID == trip.TrainID {
			return &schedules[i], nil
		}
	}
	return nil, missing("valid schedule")
}

// Purchase charges the authoritative fare through the payment gateway and
// books the trip with the resulting payment.
func (s *BookingService) Purchase(ctx context.Context, username string, req models.BookingRequest) (*models.BookingSummary, error) {
	if _, err := s.customer(ctx, username); err != nil {
		return nil, err
	}
	sc, err := s.ResolveSchedule(ctx, req.Trip())
	if err != nil {
		return nil, err
	}

	payment, err := s.gateway.Process(ctx, sc.Fare, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return s.BookTicket(ctx, username, req.Trip(), *payment)
}

// BookTicket records a booking for an already successful payment. The
// booking and its payment row are written in a single transaction.
func (s *BookingService) BookTicket(ctx context.Context, username string, trip models.Trip, payment models.PaymentResult) (*models.BookingSummary, error) {
	if err := check(trip.TravelDate, tagDate, "travel date must be YYYY-MM-DD"); err != nil {
		return nil, err
	}
	if trip.OriginStationID == trip.DestinationStationID {
		return nil, invalid("origin and destination must differ")
	}
	if payment.Status != models.PaymentStatusSuccess {
		return nil, invalid("payment was not successful")
	}

	user, err := s.customer(ctx, username)
	if err != nil {
		return nil, err
	}

	sc, err := s.ResolveSchedule(ctx, trip)
	if err != nil {
		return nil, err
	}
	if math.Abs(payment.Amount-sc.Fare) >= 0.005 {
		return nil, invalid("payment amount %.2f does not match fare %.2f", payment.Amount, sc.Fare)
	}

	booking := &models.Booking{
		UserID:               user.ID,
		ScheduleID:           sc.ID,
		TrainID:              sc.TrainID,
		OriginStationID:      sc.OriginStationID,
		DestinationStationID: sc.DestinationStationID,
		TravelDate:           sc.DepartureDate,
		Fare:                 sc.Fare,
		Status:               models.BookingStatusConfirmed,
		Username:             user.Username,
		Schedule:             *sc,
	}
	pay := &models.Payment{
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        models.PaymentStatusSuccess,
		TransactionID: payment.TransactionID,
	}

	if err := s.insertWithFreshCode(ctx, booking, pay); err != nil {
		return nil, err
	}
	booking.Payment = *pay

	s.log.WithFields(logrus.Fields{
		"booking_code": booking.BookingCode,
		"username":     user.Username,
		"schedule_id":  sc.ID,
		"fare":         sc.Fare,
	}).Info("booking created")

	summary := summarize(booking)
	return &summary, nil
}

// customer resolves the booking account; only customers may book
func (s *BookingService) customer(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalid("username is required")
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, lookup(err, "user %s", username)
	}
	if user.Role != models.RoleCustomer {
		return nil, invalid("only customers can book tickets")
	}
	return user, nil
}

// insertWithFreshCode regenerates the booking code while the store reports
// a collision, up to bookingCodeAttempts times.
func (s *BookingService) insertWithFreshCode(ctx context.Context, b *models.Booking, p *models.Payment) error {
	var err error
	for attempt := 1; attempt <= bookingCodeAttempts; attempt++ {
		b.BookingCode = s.newCode(s.now())
		err = s.store.CreateBookingWithPayment(ctx, b, p)
		if !errors.Is(err, database.ErrDuplicateBookingCode) {
			return err
		}
		s.log.WithField("attempt", attempt).Warn("booking code collision, regenerating")
	}
	return err
}

// CancelBookingByCode cancels a confirmed booking and refunds its payment
func (s *BookingService) CancelBookingByCode(ctx context.Context, code string) (*models.Cancellation, error) {
	b, err := s.GetBooking(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, b)
}

// CancelBookingForUser is CancelBookingByCode restricted to the caller's own bookings
func (s *BookingService) CancelBookingForUser(ctx context.Context, userID int, code string) (*models.Cancellation, error) {
	b, err := s.GetBookingForUser(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, b)
}

func (s *BookingService) cancel(ctx context.Context, b *models.Booking) (*models.Cancellation, error) {
	if b.Status == models.BookingStatusCancelled {
		return nil, conflict("booking %s is already cancelled", b.BookingCode)
	}

	departure, err := s.departureOf(b)
	if err != nil {
		return nil, err
	}
	quote := QuoteRefund(b.Fare, departure, s.now())
	quote.BookingCode = b.BookingCode

	if err := s.store.CancelBookingWithRefund(ctx, b.ID); err != nil {
		if errors.Is(err, database.ErrBookingNotConfirmed) {
			return nil, conflict("booking %s is already cancelled", b.BookingCode)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_code":    b.BookingCode,
		"refund_amount":   quote.RefundAmount,
		"deduction":       quote.Deduction,
		"hours_remaining": quote.HoursRemaining,
	}).Info("booking cancelled")
	return &quote, nil
}

// departureOf rebuilds the departure instant from the joined schedule,
// falling back to midnight of the travel date.
func (s *BookingService) departureOf(b *models.Booking) (time.Time, error) {
	sc := b.Schedule
	if sc.DepartureDate == "" || sc.DepartureTime == "" {
		sc.DepartureDate, sc.DepartureTime = b.TravelDate, "00:00"
	}
	return sc.DepartureAt(s.loc)
}

// QuoteRefund computes the refund for cancelling at now. Six or more hours
// before departure the fare is refunded in full; closer than that, or after
// departure, 10% of the fare is kept.
func QuoteRefund(fare float64, departure, now time.Time) models.Cancellation {
	remaining := departure.Sub(now)

	quote := models.Cancellation{
		OriginalAmount: fare,
		RefundAmount:   fare,
		HoursRemaining: round2(remaining.Hours()),
	}
	if remaining < FullRefundWindow {
		quote.Deduction = round2(fare * LateCancellationRate)
		quote.RefundAmount = round2(fare - quote.Deduction)
	}
	return quote
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetBooking returns one booking with its schedule, stations and payment
func (s *BookingService) GetBooking(ctx context.Context, code string) (*models.Booking, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, invalid("booking code is required")
	}

	b, err := s.store.GetBookingByCode(ctx, code)
	if err != nil {
		return nil, lookup(err, "booking %s", code)
	}
	return b, nil
}

// GetBookingForUser returns a booking only when userID owns it. Someone
// else's booking is reported as missing.
func (s *BookingService) GetBookingForUser(ctx context.Context, userID int, code string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, code)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, missing("booking %s", b.BookingCode)
	}
	return b, nil
}

// GetBookingHistory returns a customer's bookings, most recent first
func (s *BookingService) GetBookingHistory(ctx context.Context, username string) ([]models.Booking, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, lookup(err, "user %s", username)
	}
	return s.store.ListBookingsByUser(ctx, user.ID)
}

// GetTicket flattens a booking into the record a ticket renderer consumes
func (s *BookingService) GetTicket(ctx context.Context, code string) (*models.Ticket, error) {
	b, err := s.GetBooking(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.ticket(b), nil
}

// GetTicketForUser is GetTicket restricted to the caller's own bookings
func (s *BookingService) GetTicketForUser(ctx context.Context, userID int, code string) (*models.Ticket, error) {
	b, err := s.GetBookingForUser(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	return s.ticket(b), nil
}

func (s *BookingService) ticket(b *models.Booking) *models.Ticket {
	return &models.Ticket{
		BookingCode:        b.BookingCode,
		Username:           b.Username,
		TrainNumber:        b.Schedule.Train.Number,
		TrainName:          b.Schedule.Train.Name,
		OriginStation:      b.Schedule.Origin.Name,
		DestinationStation: b.Schedule.Destination.Name,
		DepartureDate:      b.Schedule.DepartureDate,
		DepartureTime:      b.Schedule.DepartureTime,
		ArrivalDate:        b.Schedule.ArrivalDate,
		ArrivalTime:        b.Schedule.ArrivalTime,
		Fare:               b.Fare,
		BookingStatus:      b.Status,
		PaymentStatus:      b.Payment.Status,
		TransactionID:      b.Payment.TransactionID,
		GeneratedAt:        s.now(),
	}
}

func summarize(b *models.Booking) models.BookingSummary {
	return models.BookingSummary{
		BookingID:     b.ID,
		BookingCode:   b.BookingCode,
		Username:      b.Username,
		TrainNumber:   b.Schedule.Train.Number,
		TrainName:     b.Schedule.Train.Name,
		Origin:        b.Schedule.Origin.Name,
		Destination:   b.Schedule.Destination.Name,
		TravelDate:    b.TravelDate,
		DepartureDate: b.Schedule.DepartureDate,
		DepartureTime: b.Schedule.DepartureTime,
		ArrivalDate:   b.Schedule.ArrivalDate,
		ArrivalTime:   b.Schedule.ArrivalTime,
		Fare:          b.Fare,
		Status:        b.Status,
		TransactionID: b.Payment.TransactionID,
	}
}
