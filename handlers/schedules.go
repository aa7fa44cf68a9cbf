package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

func schedulesJSON(c *gin.Context, schedules []models.Schedule) {
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	c.JSON(http.StatusOK, schedules)
}

// SearchSchedules finds journeys by origin, destination and date
func (h *Handler) SearchSchedules(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	schedules, err := h.svc.Schedules.FindSchedules(c.Request.Context(), req.OriginStationID, req.DestinationStationID, req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	schedulesJSON(c, schedules)
}

// GetSchedule returns one schedule
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.svc.Schedules.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListSchedules returns every schedule
func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.svc.Schedules.ListSchedules(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	schedulesJSON(c, schedules)
}

// TrainSchedules returns one train's timeline
func (h *Handler) TrainSchedules(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	schedules, err := h.svc.Schedules.GetSchedulesByTrain(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	schedulesJSON(c, schedules)
}

// CreateSchedule adds a journey
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	schedule, err := h.svc.Schedules.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule replaces a journey's details
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	schedule, err := h.svc.Schedules.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule removes a journey nobody has booked
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Schedules.DeleteSchedule(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
