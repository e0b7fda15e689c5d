package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Owner catalog management.
	r.Route("/api/slots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/setup", slotHandler.SetupCatalog)
		r.Post("/", slotHandler.CreateCustomSlot)
		r.Get("/", slotHandler.GetCatalog)
		r.Put("/{id}/availability", slotHandler.SetAvailability)
		r.Delete("/{id}", slotHandler.DeleteCustomSlot)
	})

	// Public availability lookup customers book from.
	r.Get("/api/garages/{id}/availability", slotHandler.GetAvailability)
}
