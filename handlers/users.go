package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// GetProfile returns the caller's account with saved passengers
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.svc.Users.GetProfile(c.Request.Context(), currentSession(c).UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile edits the caller's profile fields
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Users.UpdateProfile(c.Request.Context(), currentSession(c).UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListPassengers returns the caller's saved passengers
func (h *Handler) ListPassengers(c *gin.Context) {
	passengers, err := h.svc.Passengers.ListPassengers(c.Request.Context(), currentSession(c).UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if passengers == nil {
		passengers = []models.Passenger{}
	}

	c.JSON(http.StatusOK, passengers)
}

// AddPassenger saves a new passenger on the caller's account
func (h *Handler) AddPassenger(c *gin.Context) {
	var req models.PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.Passengers.AddPassenger(c.Request.Context(), currentSession(c).UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// UpdatePassenger edits one saved passenger by id
func (h *Handler) UpdatePassenger(c *gin.Context) {
	var req models.PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.Passengers.UpdatePassenger(c.Request.Context(), currentSession(c).UserID, c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// RemovePassenger deletes one saved passenger by id
func (h *Handler) RemovePassenger(c *gin.Context) {
	if err := h.svc.Passengers.RemovePassenger(c.Request.Context(), currentSession(c).UserID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Passenger removed"})
}

// CreateAdmin registers another administrator
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req models.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Users.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// DeactivateUser blocks an account from signing in
func (h *Handler) DeactivateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Users.DeactivateUser(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
