package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingStarted   NotificationType = "booking_started"
	NotifBookingCompleted NotificationType = "booking_completed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifDocumentReviewed NotificationType = "document_reviewed"
	NotifBankReviewed     NotificationType = "bank_reviewed"
	NotifNewReview        NotificationType = "new_review"
)

type Notification struct {
	BaseSimple
	GarageID uuid.UUID        `db:"garage_id"`
	Type     NotificationType `db:"type"`
	Title    string           `db:"title"`
	Message  string           `db:"message"`
	IsRead   bool             `db:"is_read"`
}
