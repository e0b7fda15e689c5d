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

type GarageHandler struct {
	service usecase.GarageService
	log     *zap.Logger
}

func NewGarageHandler(service usecase.GarageService, log *zap.Logger) *GarageHandler {
	return &GarageHandler{
		service: service,
		log:     log.With(zap.String("handler", "garage")),
	}
}

// CreateGarage handles POST /api/garage (protected)
func (h *GarageHandler) CreateGarage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateGarageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	garage, err := h.service.CreateGarage(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create garage")
		return
	}

	utils.ResponseCreated(w, "success", garage)
}

// GetMyGarage handles GET /api/garage (protected)
func (h *GarageHandler) GetMyGarage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	garage, err := h.service.GetGarage(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get garage")
		return
	}

	utils.ResponseSuccess(w, "success", garage)
}

// UpdateGarage handles PUT /api/garage (protected)
func (h *GarageHandler) UpdateGarage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateGarageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	garage, err := h.service.UpdateGarage(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update garage")
		return
	}

	utils.ResponseSuccess(w, "success", garage)
}

// GetGarageByID handles GET /api/garages/{id} (public)
func (h *GarageHandler) GetGarageByID(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	garage, err := h.service.GetGarageByID(r.Context(), garageID)
	if err != nil {
		handleServiceError(h.log, w, err, "get garage by ID")
		return
	}

	utils.ResponseSuccess(w, "success", garage)
}
