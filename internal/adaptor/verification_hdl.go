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

type VerificationHandler struct {
	service usecase.VerificationService
	log     *zap.Logger
}

func NewVerificationHandler(service usecase.VerificationService, log *zap.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "verification")),
	}
}

// UploadDocument handles POST /api/verification/documents (protected)
func (h *VerificationHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	doc, err := h.service.UploadDocument(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "upload document")
		return
	}

	utils.ResponseCreated(w, "success", doc)
}

// SubmitBankDetails handles POST /api/verification/bank (protected)
func (h *VerificationHandler) SubmitBankDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitBankDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bank, err := h.service.SubmitBankDetails(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit bank details")
		return
	}

	utils.ResponseCreated(w, "success", bank)
}

// GetStatus handles GET /api/verification/status (protected)
func (h *VerificationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	status, err := h.service.GetStatus(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get verification status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// ==================== ADMIN METHODS ====================

// GetStatusByGarage handles GET /api/admin/garages/{id}/verification (admin only)
func (h *VerificationHandler) GetStatusByGarage(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	status, err := h.service.GetStatusByGarage(r.Context(), garageID)
	if err != nil {
		handleServiceError(h.log, w, err, "get garage verification status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// ReviewDocument handles PUT /api/admin/documents/{id}/review (admin only)
func (h *VerificationHandler) ReviewDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "id")
	if documentID == "" {
		utils.ResponseBadRequest(w, "Document ID is required", nil)
		return
	}

	var req request.ReviewDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	doc, err := h.service.ReviewDocument(r.Context(), documentID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "review document")
		return
	}

	utils.ResponseSuccess(w, "success", doc)
}

// ReviewBank handles PUT /api/admin/garages/{id}/bank/review (admin only)
func (h *VerificationHandler) ReviewBank(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	var req request.ReviewBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bank, err := h.service.ReviewBank(r.Context(), garageID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "review bank details")
		return
	}

	utils.ResponseSuccess(w, "success", bank)
}
