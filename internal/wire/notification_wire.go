package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", notificationHandler.GetNotifications)
		r.Get("/unread", notificationHandler.CountUnread)
		r.Put("/read", notificationHandler.MarkAllRead)
		r.Put("/{id}/read", notificationHandler.MarkRead)
	})
}
