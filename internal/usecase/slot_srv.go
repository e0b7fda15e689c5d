package usecase

import (
	"context"
	"encoding/json"
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

// SlotService manages the weekly slot catalog and resolves which slots
// are still bookable on a concrete date.
type SlotService interface {
	SetupCatalog(ctx context.Context, ownerID string, req *request.SetupCatalogRequest) ([]response.TimeSlotResponse, error)
	CreateCustomSlot(ctx context.Context, ownerID string, req *request.CreateCustomSlotRequest) (*response.TimeSlotResponse, error)
	GetCatalog(ctx context.Context, ownerID string) ([]response.TimeSlotResponse, error)
	SetAvailability(ctx context.Context, ownerID, slotID string, req *request.SetSlotAvailabilityRequest) (*response.TimeSlotResponse, error)
	DeleteCustomSlot(ctx context.Context, ownerID, slotID string) error

	// GetAvailability is the public lookup customers book from.
	GetAvailability(ctx context.Context, garageID, date string) (*response.AvailabilityResponse, error)
}

type slotService struct {
	repo   *repository.Repository
	cache  *cache.Cache
	hub    *realtime.Hub
	dedupe bool
	log    *zap.Logger
}

func NewSlotService(repo *repository.Repository, config *utils.Config, cache *cache.Cache, hub *realtime.Hub, log *zap.Logger) SlotService {
	return &slotService{
		repo:   repo,
		cache:  cache,
		hub:    hub,
		dedupe: config.Booking.DedupeSlots,
		log:    log.With(zap.String("service", "slot")),
	}
}

// validateWindow checks a slot window beyond what struct tags cover.
// "HH:MM" strings compare correctly as plain strings, so start < end is
// a lexicographic comparison.
func validateWindow(startTime, endTime string) error {
	if !utils.IsValidClockTime(startTime) || !utils.IsValidClockTime(endTime) {
		return fmt.Errorf("validation failed: time must be in HH:MM 24h format")
	}
	if startTime >= endTime {
		return fmt.Errorf("validation failed: start_time %s must be before end_time %s", startTime, endTime)
	}
	return nil
}

// filterBookable keeps the slots that can still be booked: unavailable
// slots are skipped, as are slots whose start time is already claimed
// by an active booking on the date. With dedupe on, rows sharing a
// start time collapse to the first occurrence; the catalog query orders
// predefined before custom on ties, so the predefined row survives.
func filterBookable(slots []*entity.TimeSlot, occupiedTimes []string, dedupe bool) []*entity.TimeSlot {
	occupied := make(map[string]struct{}, len(occupiedTimes))
	for _, t := range occupiedTimes {
		occupied[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(slots))
	bookable := make([]*entity.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsAvailable {
			continue
		}
		if _, taken := occupied[slot.StartTime]; taken {
			continue
		}
		if dedupe {
			if _, dup := seen[slot.StartTime]; dup {
				continue
			}
			seen[slot.StartTime] = struct{}{}
		}
		bookable = append(bookable, slot)
	}

	return bookable
}

func (s *slotService) SetupCatalog(ctx context.Context, ownerID string, req *request.SetupCatalogRequest) ([]response.TimeSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Setup catalog validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	for _, window := range req.Slots {
		if err := validateWindow(window.StartTime, window.EndTime); err != nil {
			return nil, err
		}
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	slots := make([]*entity.TimeSlot, len(req.Slots))
	for i, window := range req.Slots {
		slots[i] = &entity.TimeSlot{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			GarageID:    garage.ID,
			DayOfWeek:   window.DayOfWeek,
			StartTime:   window.StartTime,
			EndTime:     window.EndTime,
			IsAvailable: true,
			Origin:      entity.SlotOriginPredefined,
		}
	}

	if err := s.repo.TimeSlot.CreateBatch(ctx, slots); err != nil {
		s.log.Error("Failed to create slot catalog", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("create slot catalog: %w", err)
	}

	s.cache.InvalidateGarage(ctx, garage.ID.String())

	s.log.Info("Slot catalog created",
		zap.String("garage_id", garage.ID.String()),
		zap.Int("slots", len(slots)),
	)

	return response.TimeSlotsToResponse(slots), nil
}

func (s *slotService) CreateCustomSlot(ctx context.Context, ownerID string, req *request.CreateCustomSlotRequest) (*response.TimeSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create custom slot validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	slot := &entity.TimeSlot{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GarageID:    garage.ID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		Origin:      entity.SlotOriginCustom,
	}

	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.log.Error("Failed to create custom slot", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("create custom slot: %w", err)
	}

	s.cache.InvalidateGarage(ctx, garage.ID.String())

	s.log.Info("Custom slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("garage_id", garage.ID.String()),
		zap.Int("day_of_week", slot.DayOfWeek),
		zap.String("start_time", slot.StartTime),
	)

	resp := response.TimeSlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) GetCatalog(ctx context.Context, ownerID string) ([]response.TimeSlotResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.TimeSlot.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get slot catalog", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get slot catalog: %w", err)
	}

	return response.TimeSlotsToResponse(slots), nil
}

func (s *slotService) slotForOwner(ctx context.Context, ownerID, slotID string) (*entity.Garage, *entity.TimeSlot, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, nil, err
	}

	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid slot ID format %s: %w", slotID, err)
	}

	slot, err := s.repo.TimeSlot.FindByID(ctx, id)
	if err != nil || slot == nil {
		return nil, nil, fmt.Errorf("slot %s not found", slotID)
	}
	if slot.GarageID != garage.ID {
		return nil, nil, fmt.Errorf("slot %s not found", slotID)
	}

	return garage, slot, nil
}

func (s *slotService) SetAvailability(ctx context.Context, ownerID, slotID string, req *request.SetSlotAvailabilityRequest) (*response.TimeSlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, slot, err := s.slotForOwner(ctx, ownerID, slotID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TimeSlot.SetAvailability(ctx, slot.ID, *req.IsAvailable); err != nil {
		s.log.Error("Failed to set slot availability", zap.Error(err), zap.String("slot_id", slotID))
		return nil, fmt.Errorf("set slot availability: %w", err)
	}
	slot.IsAvailable = *req.IsAvailable
	slot.UpdatedAt = time.Now()

	s.cache.InvalidateGarage(ctx, garage.ID.String())
	if s.hub != nil {
		s.hub.Publish(garage.ID, "availability_changed", response.TimeSlotToResponse(slot))
	}

	s.log.Info("Slot availability changed",
		zap.String("slot_id", slotID),
		zap.Bool("is_available", slot.IsAvailable),
	)

	resp := response.TimeSlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) DeleteCustomSlot(ctx context.Context, ownerID, slotID string) error {
	garage, slot, err := s.slotForOwner(ctx, ownerID, slotID)
	if err != nil {
		return err
	}

	// Predefined slots stay in the catalog; toggle them off instead.
	if slot.Origin != entity.SlotOriginCustom {
		return fmt.Errorf("cannot delete predefined slot, disable it instead")
	}

	if err := s.repo.TimeSlot.Delete(ctx, slot.ID); err != nil {
		s.log.Error("Failed to delete slot", zap.Error(err), zap.String("slot_id", slotID))
		return fmt.Errorf("delete slot: %w", err)
	}

	s.cache.InvalidateGarage(ctx, garage.ID.String())

	s.log.Info("Custom slot deleted", zap.String("slot_id", slotID))
	return nil
}

func (s *slotService) GetAvailability(ctx context.Context, garageID, date string) (*response.AvailabilityResponse, error) {
	garageUUID, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	garage, err := s.repo.Garage.FindByID(ctx, garageUUID)
	if err != nil || garage == nil {
		return nil, fmt.Errorf("garage %s not found", garageID)
	}

	if cached, ok := s.cache.GetAvailability(ctx, garageID, date); ok {
		var resp response.AvailabilityResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		s.log.Warn("Dropping unreadable cache entry", zap.String("garage_id", garageID), zap.String("date", date))
	}

	dayOfWeek := utils.Weekday(day)

	slots, err := s.repo.TimeSlot.FindByGarageAndDay(ctx, garage.ID, dayOfWeek)
	if err != nil {
		s.log.Error("Failed to get slots for day", zap.Error(err), zap.String("garage_id", garageID))
		return nil, fmt.Errorf("get slots: %w", err)
	}

	occupied, err := s.repo.Booking.FindActiveTimes(ctx, garage.ID, day)
	if err != nil {
		s.log.Error("Failed to get occupied times", zap.Error(err), zap.String("garage_id", garageID))
		return nil, fmt.Errorf("get occupied times: %w", err)
	}

	bookable := filterBookable(slots, occupied, s.dedupe)

	resp := &response.AvailabilityResponse{
		GarageID:  garage.ID,
		Date:      date,
		DayOfWeek: dayOfWeek,
		Slots:     make([]response.AvailableSlot, 0, len(bookable)),
	}
	for _, slot := range bookable {
		resp.Slots = append(resp.Slots, response.AvailableSlot{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Origin:    string(slot.Origin),
		})
	}

	if payload, err := json.Marshal(resp); err == nil {
		s.cache.SetAvailability(ctx, garageID, date, payload)
	}

	s.log.Debug("Availability resolved",
		zap.String("garage_id", garageID),
		zap.String("date", date),
		zap.Int("catalog", len(slots)),
		zap.Int("occupied", len(occupied)),
		zap.Int("bookable", len(bookable)),
	)

	return resp, nil
}
