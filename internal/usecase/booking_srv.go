package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"
	"garage-dashboard/internal/dto/response"
	"garage-dashboard/pkg/cache"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking is the public booking endpoint customers hit after
	// picking a slot from the availability lookup.
	CreateBooking(ctx context.Context, garageID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Owner endpoints.
	GetBookings(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, ownerID, bookingID string) (*response.BookingResponse, error)
	GetBookingsByDate(ctx context.Context, ownerID, date string) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, ownerID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	AssignMechanic(ctx context.Context, ownerID, bookingID string, req *request.AssignMechanicRequest) (*response.BookingResponse, error)
	GetEarnings(ctx context.Context, ownerID, from, to string) (*response.EarningsResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	cache *cache.Cache
	hub   *realtime.Hub
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, cache *cache.Cache, hub *realtime.Hub, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		cache: cache,
		hub:   hub,
		log:   log.With(zap.String("service", "booking")),
	}
}

// allowedTransitions is the booking lifecycle. Completed and cancelled
// are terminal.
var allowedTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusPending:    {entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
	entity.BookingStatusConfirmed:  {entity.BookingStatusInProgress, entity.BookingStatusCancelled},
	entity.BookingStatusInProgress: {entity.BookingStatusCompleted},
}

func canTransition(from, to entity.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var statusNotifications = map[entity.BookingStatus]struct {
	ntype entity.NotificationType
	title string
}{
	entity.BookingStatusConfirmed:  {entity.NotifBookingConfirmed, "Booking confirmed"},
	entity.BookingStatusInProgress: {entity.NotifBookingStarted, "Booking started"},
	entity.BookingStatusCompleted:  {entity.NotifBookingCompleted, "Booking completed"},
	entity.BookingStatusCancelled:  {entity.NotifBookingCancelled, "Booking cancelled"},
}

func (s *bookingService) CreateBooking(ctx context.Context, garageID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garageUUID, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	garage, err := s.repo.Garage.FindByID(ctx, garageUUID)
	if err != nil || garage == nil {
		return nil, fmt.Errorf("garage %s not found", garageID)
	}
	if !garage.IsOpen {
		return nil, fmt.Errorf("cannot book, garage is closed")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, fmt.Errorf("cannot book a past date")
	}

	// The requested time must map to an available catalog slot for the
	// date's weekday.
	slots, err := s.repo.TimeSlot.FindByGarageAndDay(ctx, garage.ID, utils.Weekday(date))
	if err != nil {
		s.log.Error("Failed to get slots", zap.Error(err), zap.String("garage_id", garageID))
		return nil, fmt.Errorf("get slots: %w", err)
	}

	var slot *entity.TimeSlot
	for _, candidate := range slots {
		if candidate.StartTime == req.SlotTime && candidate.IsAvailable {
			slot = candidate
			break
		}
	}
	if slot == nil {
		return nil, fmt.Errorf("slot %s not found in garage schedule", req.SlotTime)
	}

	taken, err := s.repo.Booking.ExistsActive(ctx, garage.ID, date, req.SlotTime)
	if err != nil {
		s.log.Error("Failed to check slot conflict", zap.Error(err))
		return nil, fmt.Errorf("check slot conflict: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("slot %s on %s is already booked", req.SlotTime, req.Date)
	}

	// Resolve services and snapshot their prices.
	var totalAmount float64
	services := make([]*entity.Service, len(req.ServiceIDs))
	for i, serviceIDStr := range req.ServiceIDs {
		serviceID, err := uuid.Parse(serviceIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s: %w", serviceIDStr, err)
		}

		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil || service == nil {
			return nil, fmt.Errorf("service %s not found", serviceIDStr)
		}
		if service.GarageID != garage.ID {
			return nil, fmt.Errorf("service %s not found", serviceIDStr)
		}
		if !service.IsActive {
			return nil, fmt.Errorf("cannot book inactive service %s", service.Name)
		}

		services[i] = service
		totalAmount += service.Price
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:          utils.GenerateBookingCode(),
		GarageID:      garage.ID,
		Date:          date,
		SlotTime:      req.SlotTime,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		TotalAmount:   totalAmount,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("garage_id", garageID),
			zap.String("date", req.Date),
			zap.String("slot_time", req.SlotTime),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	bookingServices := make([]*entity.BookingService, len(services))
	for i, service := range services {
		bookingServices[i] = &entity.BookingService{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID: booking.ID,
			ServiceID: service.ID,
			Price:     service.Price,
		}
	}

	if err := s.repo.BookingService.CreateBatch(ctx, bookingServices); err != nil {
		// Rollback: drop the dangling booking.
		s.repo.Booking.Delete(ctx, booking.ID)
		return nil, fmt.Errorf("create booking services: %w", err)
	}

	s.cache.InvalidateGarage(ctx, garage.ID.String())

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("code", booking.Code),
		zap.String("garage_id", garageID),
		zap.String("date", req.Date),
		zap.String("slot_time", req.SlotTime),
		zap.Float64("total_amount", totalAmount),
	)

	notifyGarage(ctx, s.repo, s.hub, s.log, garage.ID, entity.NotifBookingCreated,
		"New booking",
		fmt.Sprintf("%s booked %s at %s (%s)", req.CustomerName, req.Date, req.SlotTime, booking.Code))

	resp := response.BookingToResponse(booking, bookingServices)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, ownerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByGarageID(ctx, garage.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

// bookingForOwner loads a booking and checks it belongs to the owner's
// garage.
func (s *bookingService) bookingForOwner(ctx context.Context, ownerID, bookingID string) (*entity.Garage, *entity.Booking, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, nil, err
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.GarageID != garage.ID {
		return nil, nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return garage, booking, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, ownerID, bookingID string) (*response.BookingResponse, error) {
	_, booking, err := s.bookingForOwner(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.BookingService.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get booking services", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking services: %w", err)
	}

	resp := response.BookingToResponse(booking, services)
	return &resp, nil
}

func (s *bookingService) GetBookingsByDate(ctx context.Context, ownerID, date string) ([]response.BookingResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByGarageAndDate(ctx, garage.ID, day)
	if err != nil {
		s.log.Error("Failed to get bookings for date", zap.Error(err), zap.String("date", date))
		return nil, fmt.Errorf("get bookings for date: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, ownerID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, booking, err := s.bookingForOwner(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.BookingStatus(req.Status)
	if !canTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("cannot change booking status from %s to %s", booking.Status, newStatus)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking status %s: %w", bookingID, err)
	}
	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	// Completed and cancelled bookings release the slot.
	if !newStatus.Occupies() {
		s.cache.InvalidateGarage(ctx, garage.ID.String())
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("code", booking.Code),
		zap.String("status", string(newStatus)),
	)

	if note, ok := statusNotifications[newStatus]; ok {
		notifyGarage(ctx, s.repo, s.hub, s.log, garage.ID, note.ntype,
			note.title,
			fmt.Sprintf("Booking %s is now %s", booking.Code, newStatus))
	}

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) AssignMechanic(ctx context.Context, ownerID, bookingID string, req *request.AssignMechanicRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Assign mechanic validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, booking, err := s.bookingForOwner(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.Occupies() {
		return nil, fmt.Errorf("cannot assign mechanic to %s booking", booking.Status)
	}

	mechanicID, err := uuid.Parse(req.MechanicID)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanic ID format %s: %w", req.MechanicID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, mechanicID)
	if err != nil || mechanic == nil {
		return nil, fmt.Errorf("mechanic %s not found", req.MechanicID)
	}
	if mechanic.GarageID != garage.ID {
		return nil, fmt.Errorf("mechanic %s not found", req.MechanicID)
	}
	if !mechanic.IsActive {
		return nil, fmt.Errorf("cannot assign inactive mechanic %s", mechanic.Name)
	}

	if err := s.repo.Booking.AssignMechanic(ctx, booking.ID, mechanicID); err != nil {
		s.log.Error("Failed to assign mechanic", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("assign mechanic: %w", err)
	}
	booking.MechanicID = &mechanicID
	booking.UpdatedAt = time.Now()

	s.log.Info("Mechanic assigned",
		zap.String("booking_id", bookingID),
		zap.String("mechanic_id", req.MechanicID),
	)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) GetEarnings(ctx context.Context, ownerID, from, to string) (*response.EarningsResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	var fromDate, toDate *time.Time
	if from != "" {
		parsed, err := utils.ParseDate(from)
		if err != nil {
			return nil, err
		}
		fromDate = &parsed
	}
	if to != "" {
		parsed, err := utils.ParseDate(to)
		if err != nil {
			return nil, err
		}
		toDate = &parsed
	}

	total, count, err := s.repo.Booking.SumCompleted(ctx, garage.ID, fromDate, toDate)
	if err != nil {
		s.log.Error("Failed to sum earnings", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("sum earnings: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthTotal, _, err := s.repo.Booking.SumCompleted(ctx, garage.ID, &monthStart, nil)
	if err != nil {
		return nil, fmt.Errorf("sum month earnings: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayTotal, _, err := s.repo.Booking.SumCompleted(ctx, garage.ID, &dayStart, nil)
	if err != nil {
		return nil, fmt.Errorf("sum today earnings: %w", err)
	}

	recent, err := s.repo.Booking.FindCompleted(ctx, garage.ID, 5)
	if err != nil {
		s.log.Error("Failed to get recent completed bookings", zap.Error(err))
		return nil, fmt.Errorf("get recent completed bookings: %w", err)
	}

	// Payouts only flow once the garage reaches the top tier.
	docs, err := s.repo.GarageDocument.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get documents", zap.Error(err))
		return nil, fmt.Errorf("get documents: %w", err)
	}
	bank, err := s.repo.BankVerification.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get bank verification", zap.Error(err))
		return nil, fmt.Errorf("get bank verification: %w", err)
	}
	tier := ClassifyTier(BuildEvidence(docs, bank))

	return &response.EarningsResponse{
		GarageID:          garage.ID,
		From:              from,
		To:                to,
		TotalEarnings:     total,
		CompletedBookings: count,
		EarningsThisMonth: monthTotal,
		EarningsToday:     dayTotal,
		PayoutsActive:     tier == TierCertified,
		Recent:            response.BookingsToResponse(recent),
	}, nil
}
