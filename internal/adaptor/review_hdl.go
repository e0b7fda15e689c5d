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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/garages/{id}/reviews (public)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if garageID == "" {
		utils.ResponseBadRequest(w, "Garage ID is required", nil)
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), garageID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetReviews handles GET /api/reviews (protected)
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reviews, err := h.service.GetReviews(r.Context(), userID.String(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetSummary handles GET /api/reviews/summary (protected)
func (h *ReviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	summary, err := h.service.GetSummary(r.Context(), userID.String())
	if err != nil {
		handleServiceError(h.log, w, err, "get review summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
