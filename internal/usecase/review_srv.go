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
	"garage-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// CreateReview is public; customers review a completed booking.
	CreateReview(ctx context.Context, garageID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	GetReviews(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetSummary(ctx context.Context, ownerID string) (*response.ReviewSummaryResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	hub  *realtime.Hub
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, hub *realtime.Hub, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, garageID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garageUUID, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if booking.GarageID != garageUUID {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("cannot review a booking that is not completed")
	}

	exists, err := s.repo.Review.ExistsByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("booking %s is already reviewed", req.BookingID)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		GarageID:     garageUUID,
		BookingID:    bookingID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("garage_id", garageID),
		zap.Int("rating", req.Rating),
	)

	notifyGarage(ctx, s.repo, s.hub, s.log, garageUUID, entity.NotifNewReview,
		"New review",
		fmt.Sprintf("%s left a %d-star review", req.CustomerName, req.Rating))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByGarageID(ctx, garage.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return response.NewPaginatedResponse(response.ReviewsToResponse(reviews), req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetSummary(ctx context.Context, ownerID string) (*response.ReviewSummaryResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	average, err := s.repo.Review.AverageRating(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	total, err := s.repo.Review.CountByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return &response.ReviewSummaryResponse{
		GarageID:      garage.ID,
		AverageRating: average,
		TotalReviews:  total,
	}, nil
}
