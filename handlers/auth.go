package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// Register creates a customer account
func (h *Handler) Register(c *gin.Context) {
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.svc.Users.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login signs in with a username or email and returns a session token
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Sessions.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout ends the caller's session
func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Sessions.Logout(c.Request.Context(), currentSession(c).Token); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
