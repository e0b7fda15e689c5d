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

type MechanicHandler struct {
	service usecase.MechanicService
	log     *zap.Logger
}

func NewMechanicHandler(service usecase.MechanicService, log *zap.Logger) *MechanicHandler {
	return &MechanicHandler{
		service: service,
		log:     log.With(zap.String("handler", "mechanic")),
	}
}

// CreateMechanic handles POST /api/mechanics (protected)
func (h *MechanicHandler) CreateMechanic(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateMechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	mechanic, err := h.service.CreateMechanic(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create mechanic")
		return
	}

	utils.ResponseCreated(w, "success", mechanic)
}

// GetMechanics handles GET /api/mechanics (protected)
func (h *MechanicHandler) GetMechanics(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	mechanics, err := h.service.GetMechanics(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get mechanics")
		return
	}

	utils.ResponseSuccess(w, "success", mechanics)
}

// UpdateMechanic handles PUT /api/mechanics/{id} (protected)
func (h *MechanicHandler) UpdateMechanic(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	var req request.UpdateMechanicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	mechanic, err := h.service.UpdateMechanic(r.Context(), userID.String(), mechanicID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update mechanic")
		return
	}

	utils.ResponseSuccess(w, "success", mechanic)
}

// DeleteMechanic handles DELETE /api/mechanics/{id} (protected)
func (h *MechanicHandler) DeleteMechanic(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	mechanicID := chi.URLParam(r, "id")
	if mechanicID == "" {
		utils.ResponseBadRequest(w, "Mechanic ID is required", nil)
		return
	}

	if err := h.service.DeleteMechanic(r.Context(), userID.String(), mechanicID); err != nil {
		handleServiceError(h.log, w, err, "delete mechanic")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
