package request

type CreateBookingRequest struct {
	ServiceIDs    []string `json:"service_ids" validate:"required,min=1,dive,uuid4"`
	Date          string   `json:"date" validate:"required"`
	SlotTime      string   `json:"slot_time" validate:"required,hhmm"`
	CustomerName  string   `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone string   `json:"customer_phone" validate:"required,min=7,max=20"`
	CustomerEmail string   `json:"customer_email" validate:"omitempty,email"`
	Notes         string   `json:"notes" validate:"max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed in_progress completed cancelled"`
}

type AssignMechanicRequest struct {
	MechanicID string `json:"mechanic_id" validate:"required,uuid4"`
}
