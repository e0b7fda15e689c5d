package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	GarageID     uuid.UUID `db:"garage_id"`
	BookingID    uuid.UUID `db:"booking_id"`
	CustomerName string    `db:"customer_name"`
	Rating       int       `db:"rating"`
	Comment      string    `db:"comment"`
}
