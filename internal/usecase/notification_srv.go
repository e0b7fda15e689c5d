package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"
	"garage-dashboard/internal/dto/response"
	"garage-dashboard/pkg/realtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error)
	CountUnread(ctx context.Context, ownerID string) (int64, error)
	MarkRead(ctx context.Context, ownerID, notificationID string) error
	MarkAllRead(ctx context.Context, ownerID string) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

// notifyGarage records a notification and pushes it to connected
// dashboard clients. Failures are logged and swallowed; a missed
// notification must not fail the action that caused it.
func notifyGarage(ctx context.Context, repo *repository.Repository, hub *realtime.Hub, log *zap.Logger, garageID uuid.UUID, ntype entity.NotificationType, title, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		GarageID: garageID,
		Type:     ntype,
		Title:    title,
		Message:  message,
	}

	if err := repo.Notification.Create(ctx, notification); err != nil {
		log.Warn("Failed to record notification",
			zap.Error(err),
			zap.String("type", string(ntype)),
			zap.String("garage_id", garageID.String()),
		)
		return
	}

	if hub != nil {
		hub.Publish(garageID, string(ntype), response.NotificationToResponse(notification))
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.Notification.FindByGarageID(ctx, garage.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get notifications", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	unread, err := s.repo.Notification.CountUnread(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err))
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	// The paginated total tracks unread rather than all rows; the
	// dashboard badge reads it straight off the list response.
	return response.NewPaginatedResponse(response.NotificationsToResponse(notifications), req.Page, req.PerPage, unread), nil
}

func (s *notificationService) CountUnread(ctx context.Context, ownerID string) (int64, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return 0, err
	}

	unread, err := s.repo.Notification.CountUnread(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err))
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, ownerID, notificationID string) error {
	if _, err := garageForOwner(ctx, s.repo, ownerID); err != nil {
		return err
	}

	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	if err := s.repo.Notification.MarkRead(ctx, id); err != nil {
		s.log.Error("Failed to mark notification read", zap.Error(err), zap.String("notification_id", notificationID))
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, ownerID string) error {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.Notification.MarkAllRead(ctx, garage.ID); err != nil {
		s.log.Error("Failed to mark notifications read", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return fmt.Errorf("mark notifications read: %w", err)
	}

	return nil
}
