package repository

import (
	"context"
	"fmt"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingServiceRepository interface {
	CreateBatch(ctx context.Context, items []*entity.BookingService) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingService, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type bookingServiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingServiceRepository(db database.PgxIface, log *zap.Logger) BookingServiceRepository {
	return &bookingServiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_service")),
	}
}

func (r *bookingServiceRepository) CreateBatch(ctx context.Context, items []*entity.BookingService) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking service batch", zap.Error(err))
		return fmt.Errorf("begin booking service batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO booking_services (id, booking_id, service_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range items {
		_, err := tx.Exec(ctx, query,
			item.ID,
			item.BookingID,
			item.ServiceID,
			item.Price,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert booking service",
				zap.Error(err),
				zap.String("booking_id", item.BookingID.String()),
				zap.String("service_id", item.ServiceID.String()),
			)
			return fmt.Errorf("insert booking service: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking service batch: %w", err)
	}

	return nil
}

func (r *bookingServiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingService, error) {
	query := `
		SELECT id, booking_id, service_id, price, created_at
		FROM booking_services
		WHERE booking_id = $1
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking services",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking services for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var items []*entity.BookingService
	for rows.Next() {
		var item entity.BookingService
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ServiceID,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking service row", zap.Error(err))
			return nil, fmt.Errorf("scan booking service row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *bookingServiceRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_services WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking services",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking services for %s: %w", bookingID.String(), err)
	}

	return nil
}
