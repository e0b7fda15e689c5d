package response

import (
	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type TimeSlotResponse struct {
	ID          uuid.UUID `json:"id"`
	GarageID    uuid.UUID `json:"garage_id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	Origin      string    `json:"origin"`
}

func TimeSlotToResponse(s *entity.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:          s.ID,
		GarageID:    s.GarageID,
		DayOfWeek:   s.DayOfWeek,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsAvailable: s.IsAvailable,
		Origin:      string(s.Origin),
	}
}

func TimeSlotsToResponse(items []*entity.TimeSlot) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(items))
	for _, item := range items {
		out = append(out, TimeSlotToResponse(item))
	}
	return out
}

// AvailableSlot is one bookable window for a concrete date.
type AvailableSlot struct {
	SlotID    uuid.UUID `json:"slot_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Origin    string    `json:"origin"`
}

type AvailabilityResponse struct {
	GarageID  uuid.UUID       `json:"garage_id"`
	Date      string          `json:"date"`
	DayOfWeek int             `json:"day_of_week"`
	Slots     []AvailableSlot `json:"slots"`
}
