package response

import (
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type BookingServiceResponse struct {
	ServiceID uuid.UUID `json:"service_id"`
	Price     float64   `json:"price"`
}

type BookingResponse struct {
	ID            uuid.UUID                `json:"id"`
	Code          string                   `json:"code"`
	GarageID      uuid.UUID                `json:"garage_id"`
	MechanicID    *uuid.UUID               `json:"mechanic_id,omitempty"`
	Date          string                   `json:"date"`
	SlotTime      string                   `json:"slot_time"`
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	TotalAmount   float64                  `json:"total_amount"`
	Status        string                   `json:"status"`
	Services      []BookingServiceResponse `json:"services,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking, services []*entity.BookingService) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		Code:          b.Code,
		GarageID:      b.GarageID,
		MechanicID:    b.MechanicID,
		Date:          b.Date.Format("2006-01-02"),
		SlotTime:      b.SlotTime,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		Notes:         b.Notes,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	for _, bs := range services {
		resp.Services = append(resp.Services, BookingServiceResponse{
			ServiceID: bs.ServiceID,
			Price:     bs.Price,
		})
	}
	return resp
}

func BookingsToResponse(items []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, BookingToResponse(item, nil))
	}
	return out
}
