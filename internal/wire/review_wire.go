package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public review submission for completed bookings.
	r.Post("/api/garages/{id}/reviews", reviewHandler.CreateReview)

	// Owner routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/reviews", reviewHandler.GetReviews)
		r.Get("/api/reviews/summary", reviewHandler.GetSummary)
	})
}
