package repository

import (
	"context"
	"fmt"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByGarageID(ctx context.Context, garageID uuid.UUID) (int64, error)
	AverageRating(ctx context.Context, garageID uuid.UUID) (float64, error)
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, garage_id, booking_id, customer_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.GarageID,
		review.BookingID,
		review.CustomerName,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("garage_id", review.GarageID.String()),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, garage_id, booking_id, customer_name, rating, comment, created_at
		FROM reviews
		WHERE garage_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, garageID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by garage ID",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return nil, fmt.Errorf("find reviews by garage ID %s: %w", garageID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.GarageID,
			&review.BookingID,
			&review.CustomerName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByGarageID(ctx context.Context, garageID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE garage_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, garageID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return 0, fmt.Errorf("count reviews for %s: %w", garageID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, garageID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE garage_id = $1`

	var avg float64
	err := r.db.QueryRow(ctx, query, garageID).Scan(&avg)
	if err != nil {
		r.log.Error("Failed to compute average rating",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return 0, fmt.Errorf("average rating for %s: %w", garageID.String(), err)
	}

	return avg, nil
}

func (r *reviewRepository) ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, bookingID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return false, fmt.Errorf("check review for booking %s: %w", bookingID.String(), err)
	}

	return exists, nil
}
