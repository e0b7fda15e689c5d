package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Owner routes.
	r.Route("/api/services", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", catalogHandler.CreateService)
		r.Get("/", catalogHandler.GetServices)
		r.Put("/{id}", catalogHandler.UpdateService)
		r.Delete("/{id}", catalogHandler.DeleteService)
	})

	// Public catalog for a garage.
	r.Get("/api/garages/{id}/services", catalogHandler.GetServicesByGarage)
}
