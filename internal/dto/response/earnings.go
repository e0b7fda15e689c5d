package response

import (
	"github.com/google/uuid"
)

// EarningsResponse summarizes completed-booking revenue. From/To narrow
// the overall figures; the month and today breakdowns always cover the
// current calendar month and day.
type EarningsResponse struct {
	GarageID          uuid.UUID         `json:"garage_id"`
	From              string            `json:"from,omitempty"`
	To                string            `json:"to,omitempty"`
	TotalEarnings     float64           `json:"total_earnings"`
	CompletedBookings int64             `json:"completed_bookings"`
	EarningsThisMonth float64           `json:"earnings_this_month"`
	EarningsToday     float64           `json:"earnings_today"`
	PayoutsActive     bool              `json:"payouts_active"`
	Recent            []BookingResponse `json:"recent"`
}
