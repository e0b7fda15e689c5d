package entity

import (
	"github.com/google/uuid"
)

// BookingService links a booking to one of the garage's services.
// Price is the service price at booking time.
type BookingService struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ServiceID uuid.UUID `db:"service_id"`
	Price     float64   `db:"price"`
}
