package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGarage(
	r chi.Router,
	garageHandler *adaptor.GarageHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Owner routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/garage", garageHandler.CreateGarage)
		r.Get("/api/garage", garageHandler.GetMyGarage)
		r.Put("/api/garage", garageHandler.UpdateGarage)
	})

	// Public garage profile.
	r.Get("/api/garages/{id}", garageHandler.GetGarageByID)
}
