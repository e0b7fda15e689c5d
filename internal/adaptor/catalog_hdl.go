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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// CreateService handles POST /api/services (protected)
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.CreateService(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// GetServices handles GET /api/services (protected)
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	services, err := h.service.GetServices(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServicesByGarage handles GET /api/garages/{id}/services (public)
func (h *CatalogHandler) GetServicesByGarage(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	services, err := h.service.GetServicesByGarage(r.Context(), garageID)
	if err != nil {
		handleServiceError(h.log, w, err, "get garage services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// UpdateService handles PUT /api/services/{id} (protected)
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.UpdateService(r.Context(), userID.String(), serviceID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// DeleteService handles DELETE /api/services/{id} (protected)
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), userID.String(), serviceID); err != nil {
		handleServiceError(h.log, w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
