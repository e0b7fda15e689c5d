package response

import (
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type GarageResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func GarageToResponse(g *entity.Garage) GarageResponse {
	return GarageResponse{
		ID:          g.ID,
		OwnerID:     g.OwnerID,
		Name:        g.Name,
		Address:     g.Address,
		City:        g.City,
		Phone:       g.Phone,
		Description: g.Description,
		IsOpen:      g.IsOpen,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
