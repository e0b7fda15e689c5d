package usecase

import (
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/cache"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Garage       GarageService
	Catalog      CatalogService
	Mechanic     MechanicService
	Slot         SlotService
	Booking      BookingService
	Verification VerificationService
	Review       ReviewService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, cache *cache.Cache, hub *realtime.Hub, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Garage:       NewGarageService(repo, log),
		Catalog:      NewCatalogService(repo, log),
		Mechanic:     NewMechanicService(repo, log),
		Slot:         NewSlotService(repo, config, cache, hub, log),
		Booking:      NewBookingService(repo, cache, hub, log),
		Verification: NewVerificationService(repo, hub, log),
		Review:       NewReviewService(repo, hub, log),
		Notification: NewNotificationService(repo, log),
	}
}
