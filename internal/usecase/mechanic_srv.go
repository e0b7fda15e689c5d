package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"
	"garage-dashboard/internal/dto/response"
	"garage-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MechanicService interface {
	CreateMechanic(ctx context.Context, ownerID string, req *request.CreateMechanicRequest) (*response.MechanicResponse, error)
	GetMechanics(ctx context.Context, ownerID string) ([]response.MechanicResponse, error)
	UpdateMechanic(ctx context.Context, ownerID, mechanicID string, req *request.UpdateMechanicRequest) (*response.MechanicResponse, error)
	DeleteMechanic(ctx context.Context, ownerID, mechanicID string) error
}

type mechanicService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMechanicService(repo *repository.Repository, log *zap.Logger) MechanicService {
	return &mechanicService{
		repo: repo,
		log:  log.With(zap.String("service", "mechanic")),
	}
}

func (s *mechanicService) mechanicForOwner(ctx context.Context, ownerID, mechanicID string) (*entity.Mechanic, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(mechanicID)
	if err != nil {
		return nil, fmt.Errorf("invalid mechanic ID format %s: %w", mechanicID, err)
	}

	mechanic, err := s.repo.Mechanic.FindByID(ctx, id)
	if err != nil || mechanic == nil {
		return nil, fmt.Errorf("mechanic %s not found", mechanicID)
	}
	if mechanic.GarageID != garage.ID {
		return nil, fmt.Errorf("mechanic %s not found", mechanicID)
	}

	return mechanic, nil
}

func (s *mechanicService) CreateMechanic(ctx context.Context, ownerID string, req *request.CreateMechanicRequest) (*response.MechanicResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create mechanic validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mechanic := &entity.Mechanic{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GarageID:  garage.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		IsActive:  true,
	}

	if err := s.repo.Mechanic.Create(ctx, mechanic); err != nil {
		s.log.Error("Failed to create mechanic", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("create mechanic: %w", err)
	}

	s.log.Info("Mechanic created",
		zap.String("mechanic_id", mechanic.ID.String()),
		zap.String("garage_id", garage.ID.String()),
	)

	resp := response.MechanicToResponse(mechanic)
	return &resp, nil
}

func (s *mechanicService) GetMechanics(ctx context.Context, ownerID string) ([]response.MechanicResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	mechanics, err := s.repo.Mechanic.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get mechanics", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get mechanics: %w", err)
	}

	return response.MechanicsToResponse(mechanics), nil
}

func (s *mechanicService) UpdateMechanic(ctx context.Context, ownerID, mechanicID string, req *request.UpdateMechanicRequest) (*response.MechanicResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update mechanic validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	mechanic, err := s.mechanicForOwner(ctx, ownerID, mechanicID)
	if err != nil {
		return nil, err
	}

	mechanic.Name = req.Name
	mechanic.Phone = req.Phone
	mechanic.Specialty = req.Specialty
	mechanic.IsActive = req.IsActive
	mechanic.UpdatedAt = time.Now()

	if err := s.repo.Mechanic.Update(ctx, mechanic); err != nil {
		s.log.Error("Failed to update mechanic", zap.Error(err), zap.String("mechanic_id", mechanicID))
		return nil, fmt.Errorf("update mechanic: %w", err)
	}

	s.log.Info("Mechanic updated", zap.String("mechanic_id", mechanicID))

	resp := response.MechanicToResponse(mechanic)
	return &resp, nil
}

func (s *mechanicService) DeleteMechanic(ctx context.Context, ownerID, mechanicID string) error {
	mechanic, err := s.mechanicForOwner(ctx, ownerID, mechanicID)
	if err != nil {
		return err
	}

	if err := s.repo.Mechanic.Delete(ctx, mechanic.ID); err != nil {
		s.log.Error("Failed to delete mechanic", zap.Error(err), zap.String("mechanic_id", mechanicID))
		return fmt.Errorf("delete mechanic: %w", err)
	}

	s.log.Info("Mechanic deleted", zap.String("mechanic_id", mechanicID))
	return nil
}
