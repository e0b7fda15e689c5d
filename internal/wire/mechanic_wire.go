package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMechanic(
	r chi.Router,
	mechanicHandler *adaptor.MechanicHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/mechanics", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", mechanicHandler.CreateMechanic)
		r.Get("/", mechanicHandler.GetMechanics)
		r.Put("/{id}", mechanicHandler.UpdateMechanic)
		r.Delete("/{id}", mechanicHandler.DeleteMechanic)
	})
}
