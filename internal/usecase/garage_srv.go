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

type GarageService interface {
	CreateGarage(ctx context.Context, ownerID string, req *request.CreateGarageRequest) (*response.GarageResponse, error)
	GetGarage(ctx context.Context, ownerID string) (*response.GarageResponse, error)
	GetGarageByID(ctx context.Context, garageID string) (*response.GarageResponse, error)
	UpdateGarage(ctx context.Context, ownerID string, req *request.UpdateGarageRequest) (*response.GarageResponse, error)
}

type garageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGarageService(repo *repository.Repository, log *zap.Logger) GarageService {
	return &garageService{
		repo: repo,
		log:  log.With(zap.String("service", "garage")),
	}
}

// garageForOwner resolves the single garage owned by a user. Every
// owner-scoped operation goes through this so a session can never touch
// another owner's garage.
func garageForOwner(ctx context.Context, repo *repository.Repository, ownerID string) (*entity.Garage, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	garage, err := repo.Garage.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		return nil, fmt.Errorf("get garage: %w", err)
	}
	if garage == nil {
		return nil, fmt.Errorf("garage not found for this account")
	}

	return garage, nil
}

func (s *garageService) CreateGarage(ctx context.Context, ownerID string, req *request.CreateGarageRequest) (*response.GarageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create garage validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	existing, err := s.repo.Garage.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to check existing garage", zap.Error(err))
		return nil, fmt.Errorf("check garage: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("garage already exists for this account")
	}

	now := time.Now()
	garage := &entity.Garage{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerUUID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Description: req.Description,
		IsOpen:      true,
	}

	if err := s.repo.Garage.Create(ctx, garage); err != nil {
		s.log.Error("Failed to create garage", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("create garage: %w", err)
	}

	s.log.Info("Garage created",
		zap.String("garage_id", garage.ID.String()),
		zap.String("owner_id", ownerID),
		zap.String("name", garage.Name),
	)

	resp := response.GarageToResponse(garage)
	return &resp, nil
}

func (s *garageService) GetGarage(ctx context.Context, ownerID string) (*response.GarageResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	resp := response.GarageToResponse(garage)
	return &resp, nil
}

func (s *garageService) GetGarageByID(ctx context.Context, garageID string) (*response.GarageResponse, error) {
	id, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	garage, err := s.repo.Garage.FindByID(ctx, id)
	if err != nil || garage == nil {
		return nil, fmt.Errorf("garage %s not found", garageID)
	}

	resp := response.GarageToResponse(garage)
	return &resp, nil
}

func (s *garageService) UpdateGarage(ctx context.Context, ownerID string, req *request.UpdateGarageRequest) (*response.GarageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update garage validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	garage.Name = req.Name
	garage.Address = req.Address
	garage.City = req.City
	garage.Phone = req.Phone
	garage.Description = req.Description
	garage.IsOpen = req.IsOpen
	garage.UpdatedAt = time.Now()

	if err := s.repo.Garage.Update(ctx, garage); err != nil {
		s.log.Error("Failed to update garage", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("update garage: %w", err)
	}

	s.log.Info("Garage updated", zap.String("garage_id", garage.ID.String()))

	resp := response.GarageToResponse(garage)
	return &resp, nil
}
