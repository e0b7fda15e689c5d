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

// CatalogService manages the services a garage offers.
type CatalogService interface {
	CreateService(ctx context.Context, ownerID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	GetServices(ctx context.Context, ownerID string) ([]response.ServiceResponse, error)
	GetServicesByGarage(ctx context.Context, garageID string) ([]response.ServiceResponse, error)
	UpdateService(ctx context.Context, ownerID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, ownerID, serviceID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// serviceForOwner loads a service and checks it belongs to the owner's
// garage.
func (s *catalogService) serviceForOwner(ctx context.Context, ownerID, serviceID string) (*entity.Garage, *entity.Service, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, nil, err
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || service == nil {
		return nil, nil, fmt.Errorf("service %s not found", serviceID)
	}
	if service.GarageID != garage.ID {
		return nil, nil, fmt.Errorf("service %s not found", serviceID)
	}

	return garage, service, nil
}

func (s *catalogService) CreateService(ctx context.Context, ownerID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GarageID:        garage.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("garage_id", garage.ID.String()),
		zap.String("name", service.Name),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) GetServices(ctx context.Context, ownerID string) ([]response.ServiceResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	services, err := s.repo.Service.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get services: %w", err)
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) GetServicesByGarage(ctx context.Context, garageID string) ([]response.ServiceResponse, error) {
	id, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	garage, err := s.repo.Garage.FindByID(ctx, id)
	if err != nil || garage == nil {
		return nil, fmt.Errorf("garage %s not found", garageID)
	}

	services, err := s.repo.Service.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err), zap.String("garage_id", garageID))
		return nil, fmt.Errorf("get services: %w", err)
	}

	// Public catalog shows active services only.
	active := make([]*entity.Service, 0, len(services))
	for _, svc := range services {
		if svc.IsActive {
			active = append(active, svc)
		}
	}

	return response.ServicesToResponse(active), nil
}

func (s *catalogService) UpdateService(ctx context.Context, ownerID, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	_, service, err := s.serviceForOwner(ctx, ownerID, serviceID)
	if err != nil {
		return nil, err
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	service.IsActive = req.IsActive
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info("Service updated", zap.String("service_id", serviceID))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	_, service, err := s.serviceForOwner(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}

	if err := s.repo.Service.Delete(ctx, service.ID); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", serviceID))
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted", zap.String("service_id", serviceID))
	return nil
}
