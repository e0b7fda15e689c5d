package repository

import (
	"context"
	"fmt"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, garageID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, garageID uuid.UUID) error
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, garage_id, type, title, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.GarageID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.IsRead,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("garage_id", notification.GarageID.String()),
			zap.String("type", string(notification.Type)),
		)
		return fmt.Errorf("create %s notification: %w", string(notification.Type), err)
	}

	return nil
}

func (r *notificationRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, garage_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE garage_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, garageID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find notifications",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return nil, fmt.Errorf("find notifications for %s: %w", garageID.String(), err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var notification entity.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.GarageID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, garageID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE garage_id = $1 AND is_read = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query, garageID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count unread notifications",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return 0, fmt.Errorf("count unread notifications for %s: %w", garageID.String(), err)
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return fmt.Errorf("mark notification %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found", id.String())
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, garageID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE garage_id = $1 AND is_read = FALSE`

	_, err := r.db.Exec(ctx, query, garageID)
	if err != nil {
		r.log.Error("Failed to mark all notifications read",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return fmt.Errorf("mark all notifications read for %s: %w", garageID.String(), err)
	}

	return nil
}
