package repository

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByGarageID(ctx context.Context, garageID uuid.UUID) (int64, error)
	FindByGarageAndDate(ctx context.Context, garageID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	AssignMechanic(ctx context.Context, bookingID, mechanicID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Availability queries
	FindActiveTimes(ctx context.Context, garageID uuid.UUID, date time.Time) ([]string, error)
	ExistsActive(ctx context.Context, garageID uuid.UUID, date time.Time, slotTime string) (bool, error)

	// Earnings queries
	SumCompleted(ctx context.Context, garageID uuid.UUID, from, to *time.Time) (float64, int64, error)
	FindCompleted(ctx context.Context, garageID uuid.UUID, limit int) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, code, garage_id, mechanic_id, date, slot_time, customer_name,
	customer_phone, customer_email, notes, total_amount, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.GarageID,
		&booking.MechanicID,
		&booking.Date,
		&booking.SlotTime,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.Notes,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, code, garage_id, mechanic_id, date, slot_time, customer_name,
		                      customer_phone, customer_email, notes, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Code,
		booking.GarageID,
		booking.MechanicID,
		booking.Date,
		booking.SlotTime,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.CustomerEmail,
		booking.Notes,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("code", booking.Code),
			zap.String("garage_id", booking.GarageID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Code, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE garage_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC, slot_time DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryBookings(ctx, query, garageID, limit, offset)
}

func (r *bookingRepository) CountByGarageID(ctx context.Context, garageID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE garage_id = $1 AND deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query, garageID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by garage ID",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return 0, fmt.Errorf("count bookings by garage ID %s: %w", garageID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByGarageAndDate(ctx context.Context, garageID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE garage_id = $1 AND date = $2 AND deleted_at IS NULL
		ORDER BY slot_time
	`

	return r.queryBookings(ctx, query, garageID, date)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET mechanic_id = $2, date = $3, slot_time = $4, customer_name = $5,
		    customer_phone = $6, customer_email = $7, notes = $8, total_amount = $9,
		    status = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.MechanicID,
		booking.Date,
		booking.SlotTime,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.CustomerEmail,
		booking.Notes,
		booking.TotalAmount,
		booking.Status,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) AssignMechanic(ctx context.Context, bookingID, mechanicID uuid.UUID) error {
	query := `UPDATE bookings SET mechanic_id = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, bookingID, mechanicID)
	if err != nil {
		r.log.Error("Failed to assign mechanic",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("mechanic_id", mechanicID.String()),
		)
		return fmt.Errorf("assign mechanic to booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

// FindActiveTimes returns the slot times already claimed on a date by
// bookings in pending, confirmed or in_progress status. Completed and
// cancelled bookings do not occupy their slot.
func (r *bookingRepository) FindActiveTimes(ctx context.Context, garageID uuid.UUID, date time.Time) ([]string, error) {
	query := `
		SELECT slot_time
		FROM bookings
		WHERE garage_id = $1 AND date = $2
		  AND status IN ('pending', 'confirmed', 'in_progress')
		  AND deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, garageID, date)
	if err != nil {
		r.log.Error("Failed to find active booking times",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find active booking times: %w", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			r.log.Error("Failed to scan booking time", zap.Error(err))
			return nil, fmt.Errorf("scan booking time: %w", err)
		}
		times = append(times, t)
	}

	return times, nil
}

// ExistsActive is the insert-time conflict check backing the store-side
// uniqueness requirement for (garage, date, slot_time). The table also
// carries a partial unique index over active statuses so concurrent
// inserts cannot both succeed.
func (r *bookingRepository) ExistsActive(ctx context.Context, garageID uuid.UUID, date time.Time, slotTime string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE garage_id = $1 AND date = $2 AND slot_time = $3
			  AND status IN ('pending', 'confirmed', 'in_progress')
			  AND deleted_at IS NULL
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, garageID, date, slotTime).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check active booking",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
			zap.String("slot_time", slotTime),
		)
		return false, fmt.Errorf("check active booking: %w", err)
	}

	return exists, nil
}

func (r *bookingRepository) SumCompleted(ctx context.Context, garageID uuid.UUID, from, to *time.Time) (float64, int64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM bookings
		WHERE garage_id = $1 AND status = 'completed' AND deleted_at IS NULL
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
	`

	var total float64
	var count int64
	err := r.db.QueryRow(ctx, query, garageID, from, to).Scan(&total, &count)
	if err != nil {
		r.log.Error("Failed to sum completed bookings",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return 0, 0, fmt.Errorf("sum completed bookings: %w", err)
	}

	return total, count, nil
}

func (r *bookingRepository) FindCompleted(ctx context.Context, garageID uuid.UUID, limit int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE garage_id = $1 AND status = 'completed' AND deleted_at IS NULL
		ORDER BY date DESC, slot_time DESC
		LIMIT $2
	`

	return r.queryBookings(ctx, query, garageID, limit)
}
