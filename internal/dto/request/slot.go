package request

// SlotWindow is one time window inside a catalog setup request.
type SlotWindow struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// SetupCatalogRequest creates the predefined weekly slot set in one
// call, typically during onboarding.
type SetupCatalogRequest struct {
	Slots []SlotWindow `json:"slots" validate:"required,min=1,dive"`
}

// CreateCustomSlotRequest adds a single custom window alongside the
// predefined set.
type CreateCustomSlotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

type SetSlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
