package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// CreateBooking charges the fare through the payment gateway and books the trip
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := h.svc.Bookings.Purchase(c.Request.Context(), currentSession(c).User.Username, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// ListBookings returns the caller's booking history
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.svc.Bookings.GetBookingHistory(c.Request.Context(), currentSession(c).User.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves one of the caller's bookings by code
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.svc.Bookings.GetBookingForUser(c.Request.Context(), currentSession(c).UserID, c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a booking and reports the refund
func (h *Handler) CancelBooking(c *gin.Context) {
	cancellation, err := h.svc.Bookings.CancelBookingForUser(c.Request.Context(), currentSession(c).UserID, c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancellation)
}

// GetTicket returns the flattened ticket record for a booking
func (h *Handler) GetTicket(c *gin.Context) {
	ticket, err := h.svc.Bookings.GetTicketForUser(c.Request.Context(), currentSession(c).UserID, c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
