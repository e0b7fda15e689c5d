package wire

import (
	"net/http"

	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/usecase"
	"garage-dashboard/pkg/cache"
	"garage-dashboard/pkg/middleware"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services and handlers and builds the router.
func Wiring(repo *repository.Repository, config *utils.Config, cache *cache.Cache, hub *realtime.Hub, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, cache, hub, logger)
	handler := adaptor.NewHandler(service, hub, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireGarage(r, handler.Garage, repo, logger)
	wireCatalog(r, handler.Catalog, repo, logger)
	wireMechanic(r, handler.Mechanic, repo, logger)
	wireSlot(r, handler.Slot, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireVerification(r, handler.Verification, repo, logger)
	wireReview(r, handler.Review, repo, logger)
	wireNotification(r, handler.Notification, repo, logger)
	wireRealtime(r, handler.Realtime, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
