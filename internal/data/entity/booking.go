package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Occupies reports whether a booking in this status still claims its
// time slot. Completed and cancelled bookings free the slot.
func (s BookingStatus) Occupies() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusInProgress
}

// Booking claims one catalog slot (SlotTime matches TimeSlot.StartTime)
// on a concrete calendar date.
type Booking struct {
	Base
	Code          string        `db:"code"`
	GarageID      uuid.UUID     `db:"garage_id"`
	MechanicID    *uuid.UUID    `db:"mechanic_id"`
	Date          time.Time     `db:"date"`
	SlotTime      string        `db:"slot_time"`
	CustomerName  string        `db:"customer_name"`
	CustomerPhone string        `db:"customer_phone"`
	CustomerEmail string        `db:"customer_email"`
	Notes         string        `db:"notes"`
	TotalAmount   float64       `db:"total_amount"`
	Status        BookingStatus `db:"status"`
}
