package request

type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=150"`
	Description     string  `json:"description" validate:"max=1000"`
	Price           float64 `json:"price" validate:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=5,lte=480"`
}

type UpdateServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=150"`
	Description     string  `json:"description" validate:"max=1000"`
	Price           float64 `json:"price" validate:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=5,lte=480"`
	IsActive        bool    `json:"is_active"`
}

type CreateMechanicRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	Specialty string `json:"specialty" validate:"max=150"`
}

type UpdateMechanicRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	Specialty string `json:"specialty" validate:"max=150"`
	IsActive  bool   `json:"is_active"`
}
