package repository

import (
	"context"
	"fmt"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *entity.TimeSlot) error
	CreateBatch(ctx context.Context, slots []*entity.TimeSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error)
	FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.TimeSlot, error)
	// FindByGarageAndDay returns the catalog for one weekday ordered by
	// start time; predefined rows come before custom rows on ties.
	FindByGarageAndDay(ctx context.Context, garageID uuid.UUID, dayOfWeek int) ([]*entity.TimeSlot, error)
	SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type timeSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimeSlotRepository(db database.PgxIface, log *zap.Logger) TimeSlotRepository {
	return &timeSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "time_slot")),
	}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *entity.TimeSlot) error {
	query := `
		INSERT INTO time_slots (id, garage_id, day_of_week, start_time, end_time, is_available, origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.GarageID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.IsAvailable,
		slot.Origin,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create time slot",
			zap.Error(err),
			zap.String("garage_id", slot.GarageID.String()),
			zap.Int("day_of_week", slot.DayOfWeek),
			zap.String("start_time", slot.StartTime),
		)
		return fmt.Errorf("create time slot %s: %w", slot.StartTime, err)
	}

	return nil
}

func (r *timeSlotRepository) CreateBatch(ctx context.Context, slots []*entity.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin time slot batch", zap.Error(err))
		return fmt.Errorf("begin time slot batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO time_slots (id, garage_id, day_of_week, start_time, end_time, is_available, origin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, slot := range slots {
		_, err := tx.Exec(ctx, query,
			slot.ID,
			slot.GarageID,
			slot.DayOfWeek,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
			slot.Origin,
			slot.CreatedAt,
			slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert time slot in batch",
				zap.Error(err),
				zap.String("start_time", slot.StartTime),
			)
			return fmt.Errorf("insert time slot %s: %w", slot.StartTime, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit time slot batch: %w", err)
	}

	return nil
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeSlot, error) {
	query := `
		SELECT id, garage_id, day_of_week, start_time, end_time, is_available, origin, created_at, updated_at
		FROM time_slots
		WHERE id = $1
	`

	var slot entity.TimeSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.GarageID,
		&slot.DayOfWeek,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.Origin,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find time slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find time slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *timeSlotRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.TimeSlot, error) {
	query := `
		SELECT id, garage_id, day_of_week, start_time, end_time, is_available, origin, created_at, updated_at
		FROM time_slots
		WHERE garage_id = $1
		ORDER BY day_of_week, start_time, origin DESC
	`

	return r.querySlots(ctx, query, garageID)
}

func (r *timeSlotRepository) FindByGarageAndDay(ctx context.Context, garageID uuid.UUID, dayOfWeek int) ([]*entity.TimeSlot, error) {
	query := `
		SELECT id, garage_id, day_of_week, start_time, end_time, is_available, origin, created_at, updated_at
		FROM time_slots
		WHERE garage_id = $1 AND day_of_week = $2
		ORDER BY start_time, origin DESC
	`

	return r.querySlots(ctx, query, garageID, dayOfWeek)
}

func (r *timeSlotRepository) querySlots(ctx context.Context, query string, args ...any) ([]*entity.TimeSlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query time slots", zap.Error(err))
		return nil, fmt.Errorf("query time slots: %w", err)
	}
	defer rows.Close()

	var slots []*entity.TimeSlot
	for rows.Next() {
		var slot entity.TimeSlot
		err := rows.Scan(
			&slot.ID,
			&slot.GarageID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&slot.Origin,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan time slot row", zap.Error(err))
			return nil, fmt.Errorf("scan time slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

func (r *timeSlotRepository) SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error {
	query := `UPDATE time_slots SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isAvailable)
	if err != nil {
		r.log.Error("Failed to set time slot availability",
			zap.Error(err),
			zap.String("slot_id", id.String()),
			zap.Bool("is_available", isAvailable),
		)
		return fmt.Errorf("set availability for time slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("time slot %s not found", id.String())
	}

	return nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete time slot",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("delete time slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("time slot %s not found", id.String())
	}

	r.log.Info("Time slot deleted", zap.String("slot_id", id.String()))
	return nil
}
