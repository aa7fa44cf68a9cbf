package models

// Station represents a train station
type Station struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// StationRequest represents a station creation request
type StationRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	City string `json:"city" binding:"required"`
}

// StationUpdateRequest carries the mutable station fields; the code never changes
type StationUpdateRequest struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city" binding:"required"`
}
