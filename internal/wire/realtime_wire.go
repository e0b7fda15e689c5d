package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRealtime(
	r chi.Router,
	realtimeHandler *adaptor.RealtimeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Get("/api/ws", realtimeHandler.Subscribe)
}
