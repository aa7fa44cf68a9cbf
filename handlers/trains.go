package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// ListStations returns all stations
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.svc.Catalog.ListStations(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}

	c.JSON(http.StatusOK, stations)
}

// ListTrains returns all trains, including deactivated ones
func (h *Handler) ListTrains(c *gin.Context) {
	trains, err := h.svc.Catalog.ListTrains(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if trains == nil {
		trains = []models.Train{}
	}

	c.JSON(http.StatusOK, trains)
}

// CreateTrain adds a train to the catalog
func (h *Handler) CreateTrain(c *gin.Context) {
	var req models.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	train, err := h.svc.Catalog.AddTrain(c.Request.Context(), req.Number, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, train)
}

// UpdateTrain renames a train
func (h *Handler) UpdateTrain(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.TrainUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	train, err := h.svc.Catalog.UpdateTrain(c.Request.Context(), id, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, train)
}

// RemoveTrain deactivates a train
func (h *Handler) RemoveTrain(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Catalog.RemoveTrain(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Train deactivated"})
}

// ReactivateTrain puts a deactivated train back into service
func (h *Handler) ReactivateTrain(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Catalog.ReactivateTrain(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Train activated"})
}

// CreateStation adds a station to the catalog
func (h *Handler) CreateStation(c *gin.Context) {
	var req models.StationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	station, err := h.svc.Catalog.AddStation(c.Request.Context(), req.Code, req.Name, req.City)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, station)
}

// UpdateStation changes a station's name and city
func (h *Handler) UpdateStation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.StationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	station, err := h.svc.Catalog.UpdateStation(c.Request.Context(), id, req.Name, req.City)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, station)
}
