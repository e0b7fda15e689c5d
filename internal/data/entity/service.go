package entity

import (
	"github.com/google/uuid"
)

// Service is a single offering in a garage's catalog (oil change,
// brake inspection, ...). Price is snapshotted into bookings.
type Service struct {
	Base
	GarageID        uuid.UUID `db:"garage_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Price           float64   `db:"price"`
	DurationMinutes int       `db:"duration_minutes"`
	IsActive        bool      `db:"is_active"`
}
