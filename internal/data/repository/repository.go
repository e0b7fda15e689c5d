package repository

import (
	"garage-dashboard/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Garage           GarageRepository
	Service          ServiceRepository
	Mechanic         MechanicRepository
	TimeSlot         TimeSlotRepository
	Booking          BookingRepository
	BookingService   BookingServiceRepository
	GarageDocument   GarageDocumentRepository
	BankVerification BankVerificationRepository
	Review           ReviewRepository
	Notification     NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Garage:           NewGarageRepository(db, log),
		Service:          NewServiceRepository(db, log),
		Mechanic:         NewMechanicRepository(db, log),
		TimeSlot:         NewTimeSlotRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		BookingService:   NewBookingServiceRepository(db, log),
		GarageDocument:   NewGarageDocumentRepository(db, log),
		BankVerification: NewBankVerificationRepository(db, log),
		Review:           NewReviewRepository(db, log),
		Notification:     NewNotificationRepository(db, log),
	}
}
