package request

type CreateGarageRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Address     string `json:"address" validate:"required,max=300"`
	City        string `json:"city" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	Description string `json:"description" validate:"max=1000"`
}

type UpdateGarageRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Address     string `json:"address" validate:"required,max=300"`
	City        string `json:"city" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	Description string `json:"description" validate:"max=1000"`
	IsOpen      bool   `json:"is_open"`
}
