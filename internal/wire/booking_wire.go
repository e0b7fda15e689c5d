package wire

import (
	"garage-dashboard/internal/adaptor"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public booking creation, hit after the availability lookup.
	r.Post("/api/garages/{id}/bookings", bookingHandler.CreateBooking)

	// Owner routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/bookings", bookingHandler.GetBookings)
		r.Get("/api/bookings/calendar", bookingHandler.GetBookingsByDate)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
		r.Put("/api/bookings/{id}/mechanic", bookingHandler.AssignMechanic)
		r.Get("/api/earnings", bookingHandler.GetEarnings)
	})
}
