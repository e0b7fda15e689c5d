package usecase

import (
	"context"
	"testing"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewFixture struct {
	svc      *reviewService
	garage   *entity.Garage
	booking  *entity.Booking
	reviews  *fakeReviewRepo
	bookings *fakeBookingRepo
	notes    *fakeNotificationRepo
}

func newReviewFixture(status entity.BookingStatus) *reviewFixture {
	now := time.Now()
	garage := &entity.Garage{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID: uuid.New(),
		Name:    "Test Garage",
		IsOpen:  true,
	}
	booking := &entity.Booking{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Code:         "GRG-20250601-120000-0001",
		GarageID:     garage.ID,
		Date:         now,
		SlotTime:     "09:00",
		CustomerName: "Jamie Ortega",
		Status:       status,
	}

	reviews := &fakeReviewRepo{}
	bookings := &fakeBookingRepo{bookings: []*entity.Booking{booking}}
	notes := &fakeNotificationRepo{}

	repo := &repository.Repository{
		Garage:       &fakeGarageRepo{garages: []*entity.Garage{garage}},
		Booking:      bookings,
		Review:       reviews,
		Notification: notes,
	}

	svc := NewReviewService(repo, nil, zap.NewNop()).(*reviewService)
	return &reviewFixture{svc: svc, garage: garage, booking: booking, reviews: reviews, bookings: bookings, notes: notes}
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	reviewRequest := func(f *reviewFixture) *request.CreateReviewRequest {
		return &request.CreateReviewRequest{
			BookingID:    f.booking.ID.String(),
			CustomerName: "Jamie Ortega",
			Rating:       5,
			Comment:      "Quick and honest work",
		}
	}

	t.Run("completed booking can be reviewed", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusCompleted)

		resp, err := f.svc.CreateReview(ctx, f.garage.ID.String(), reviewRequest(f))
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Rating)
		require.Len(t, f.reviews.reviews, 1)

		require.Len(t, f.notes.created, 1)
		assert.Equal(t, entity.NotifNewReview, f.notes.created[0].Type)
	})

	t.Run("pending booking cannot be reviewed", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusPending)

		_, err := f.svc.CreateReview(ctx, f.garage.ID.String(), reviewRequest(f))
		assert.ErrorContains(t, err, "not completed")
	})

	t.Run("cancelled booking cannot be reviewed", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusCancelled)

		_, err := f.svc.CreateReview(ctx, f.garage.ID.String(), reviewRequest(f))
		assert.ErrorContains(t, err, "not completed")
	})

	t.Run("second review of the same booking conflicts", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusCompleted)

		_, err := f.svc.CreateReview(ctx, f.garage.ID.String(), reviewRequest(f))
		require.NoError(t, err)

		_, err = f.svc.CreateReview(ctx, f.garage.ID.String(), reviewRequest(f))
		assert.ErrorContains(t, err, "already reviewed")
		assert.Len(t, f.reviews.reviews, 1)
	})

	t.Run("booking from another garage reads as not found", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusCompleted)

		_, err := f.svc.CreateReview(ctx, uuid.New().String(), reviewRequest(f))
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("rating out of range fails validation", func(t *testing.T) {
		f := newReviewFixture(entity.BookingStatusCompleted)
		req := reviewRequest(f)
		req.Rating = 6

		_, err := f.svc.CreateReview(ctx, f.garage.ID.String(), req)
		assert.ErrorContains(t, err, "validation failed")
	})
}
