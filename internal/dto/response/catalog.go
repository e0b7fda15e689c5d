package response

import (
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	GarageID        uuid.UUID `json:"garage_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		GarageID:        s.GarageID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

func ServicesToResponse(items []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ServiceToResponse(item))
	}
	return out
}

type MechanicResponse struct {
	ID        uuid.UUID `json:"id"`
	GarageID  uuid.UUID `json:"garage_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Specialty string    `json:"specialty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func MechanicToResponse(m *entity.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		GarageID:  m.GarageID,
		Name:      m.Name,
		Phone:     m.Phone,
		Specialty: m.Specialty,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func MechanicsToResponse(items []*entity.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(items))
	for _, item := range items {
		out = append(out, MechanicToResponse(item))
	}
	return out
}
