package request

type CreateReviewRequest struct {
	BookingID    string `json:"booking_id" validate:"required,uuid4"`
	CustomerName string `json:"customer_name" validate:"required,min=2,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"max=1000"`
}
