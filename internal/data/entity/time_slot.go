package entity

import (
	"github.com/google/uuid"
)

type SlotOrigin string

const (
	SlotOriginPredefined SlotOrigin = "predefined"
	SlotOriginCustom     SlotOrigin = "custom"
)

// TimeSlot is one weekly time window in a garage's slot catalog.
// DayOfWeek uses 0=Sunday..6=Saturday. StartTime/EndTime are "HH:MM"
// 24h strings; startTime < endTime is enforced at creation.
type TimeSlot struct {
	BaseNoDelete
	GarageID    uuid.UUID  `db:"garage_id"`
	DayOfWeek   int        `db:"day_of_week"`
	StartTime   string     `db:"start_time"`
	EndTime     string     `db:"end_time"`
	IsAvailable bool       `db:"is_available"`
	Origin      SlotOrigin `db:"origin"`
}
