package models

import "time"

// ServiceType is a bookable shop service (oil change, tire mount,
// full inspection, ...). DurationMinutes drives slot generation.
type ServiceType struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
