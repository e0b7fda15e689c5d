package adaptor

import (
	"encoding/json"
	"net/http"

	"garage-dashboard/internal/dto/request"
	"garage-dashboard/internal/usecase"
	"garage-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// SetupCatalog handles POST /api/slots/setup (protected)
func (h *SlotHandler) SetupCatalog(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SetupCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slots, err := h.service.SetupCatalog(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "setup slot catalog")
		return
	}

	utils.ResponseCreated(w, "success", slots)
}

// CreateCustomSlot handles POST /api/slots (protected)
func (h *SlotHandler) CreateCustomSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCustomSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateCustomSlot(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create custom slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// GetCatalog handles GET /api/slots (protected)
func (h *SlotHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slots, err := h.service.GetCatalog(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get slot catalog")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// SetAvailability handles PUT /api/slots/{id}/availability (protected)
func (h *SlotHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	var req request.SetSlotAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.SetAvailability(r.Context(), userID.String(), slotID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "set slot availability")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// DeleteCustomSlot handles DELETE /api/slots/{id} (protected)
func (h *SlotHandler) DeleteCustomSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	if err := h.service.DeleteCustomSlot(r.Context(), userID.String(), slotID); err != nil {
		handleServiceError(h.log, w, err, "delete custom slot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetAvailability handles GET /api/garages/{id}/availability?date=YYYY-MM-DD (public)
func (h *SlotHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), garageID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
