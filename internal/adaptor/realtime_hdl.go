package adaptor

import (
	"net/http"

	"garage-dashboard/internal/usecase"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type RealtimeHandler struct {
	garages usecase.GarageService
	hub     *realtime.Hub
	log     *zap.Logger
}

func NewRealtimeHandler(garages usecase.GarageService, hub *realtime.Hub, log *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		garages: garages,
		hub:     hub,
		log:     log.With(zap.String("handler", "realtime")),
	}
}

// Subscribe handles GET /api/ws (protected). The connection is scoped
// to the caller's garage; events for other garages never reach it.
func (h *RealtimeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	garage, err := h.garages.GetGarage(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "subscribe to events")
		return
	}

	h.hub.ServeWS(w, r, garage.ID)
}
