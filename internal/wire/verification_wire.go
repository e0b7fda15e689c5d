package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVerification(
	r chi.Router,
	verificationHandler *adaptor.VerificationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Owner routes.
	r.Route("/api/verification", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/documents", verificationHandler.UploadDocument)
		r.Post("/bank", verificationHandler.SubmitBankDetails)
		r.Get("/status", verificationHandler.GetStatus)
	})

	// Admin review routes.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/garages/{id}/verification", verificationHandler.GetStatusByGarage)
		r.Put("/documents/{id}/review", verificationHandler.ReviewDocument)
		r.Put("/garages/{id}/bank/review", verificationHandler.ReviewBank)
	})
}
