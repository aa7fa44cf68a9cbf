package models

// TrainStatus is the lifecycle state of a train
type TrainStatus string

const (
	TrainStatusActive   TrainStatus = "active"
	TrainStatusInactive TrainStatus = "inactive"
)

// Train represents a train in the catalog
type Train struct {
	ID     int         `json:"id"`
	Number string      `json:"train_number"`
	Name   string      `json:"train_name"`
	Status TrainStatus `json:"status"`
}

// IsActive reports whether the train can carry schedules and bookings
func (t Train) IsActive() bool {
	return t.Status == TrainStatusActive
}

// TrainRequest represents a train creation request
type TrainRequest struct {
	Number string `json:"train_number" binding:"required"`
	Name   string `json:"train_name" binding:"required"`
}

// TrainUpdateRequest represents a train rename request
type TrainUpdateRequest struct {
	Name string `json:"train_name" binding:"required"`
}
