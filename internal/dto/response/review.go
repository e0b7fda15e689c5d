package response

import (
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	GarageID     uuid.UUID `json:"garage_id"`
	BookingID    uuid.UUID `json:"booking_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReviewToResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		GarageID:     r.GarageID,
		BookingID:    r.BookingID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func ReviewsToResponse(items []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ReviewToResponse(item))
	}
	return out
}

type ReviewSummaryResponse struct {
	GarageID      uuid.UUID `json:"garage_id"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int64     `json:"total_reviews"`
}
