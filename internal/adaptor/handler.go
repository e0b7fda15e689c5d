package adaptor

import (
	"net/http"
	"strings"

	"garage-dashboard/internal/usecase"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Garage       *GarageHandler
	Catalog      *CatalogHandler
	Mechanic     *MechanicHandler
	Slot         *SlotHandler
	Booking      *BookingHandler
	Verification *VerificationHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
	Realtime     *RealtimeHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Garage:       NewGarageHandler(service.Garage, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Mechanic:     NewMechanicHandler(service.Mechanic, log),
		Slot:         NewSlotHandler(service.Slot, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Verification: NewVerificationHandler(service.Verification, log),
		Review:       NewReviewHandler(service.Review, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Realtime:     NewRealtimeHandler(service.Garage, hub, log),
	}
}

// handleServiceError maps service error messages to HTTP responses.
// Services encode the failure class in the message prefix, so handlers
// stay free of error type plumbing.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
