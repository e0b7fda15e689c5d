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

type MechanicRepository interface {
	Create(ctx context.Context, mechanic *entity.Mechanic) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error)
	FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.Mechanic, error)
	Update(ctx context.Context, mechanic *entity.Mechanic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mechanicRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMechanicRepository(db database.PgxIface, log *zap.Logger) MechanicRepository {
	return &mechanicRepository{
		db:  db,
		log: log.With(zap.String("repository", "mechanic")),
	}
}

func (r *mechanicRepository) Create(ctx context.Context, mechanic *entity.Mechanic) error {
	query := `
		INSERT INTO mechanics (id, garage_id, name, phone, specialty, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		mechanic.ID,
		mechanic.GarageID,
		mechanic.Name,
		mechanic.Phone,
		mechanic.Specialty,
		mechanic.IsActive,
		mechanic.CreatedAt,
		mechanic.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create mechanic",
			zap.Error(err),
			zap.String("garage_id", mechanic.GarageID.String()),
			zap.String("name", mechanic.Name),
		)
		return fmt.Errorf("create mechanic %s: %w", mechanic.Name, err)
	}

	return nil
}

func (r *mechanicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mechanic, error) {
	query := `
		SELECT id, garage_id, name, phone, specialty, is_active, created_at, updated_at
		FROM mechanics
		WHERE id = $1 AND deleted_at IS NULL
	`

	var mechanic entity.Mechanic
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mechanic.ID,
		&mechanic.GarageID,
		&mechanic.Name,
		&mechanic.Phone,
		&mechanic.Specialty,
		&mechanic.IsActive,
		&mechanic.CreatedAt,
		&mechanic.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mechanic by ID",
			zap.Error(err),
			zap.String("mechanic_id", id.String()),
		)
		return nil, fmt.Errorf("find mechanic by ID %s: %w", id.String(), err)
	}

	return &mechanic, nil
}

func (r *mechanicRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.Mechanic, error) {
	query := `
		SELECT id, garage_id, name, phone, specialty, is_active, created_at, updated_at
		FROM mechanics
		WHERE garage_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, garageID)
	if err != nil {
		r.log.Error("Failed to find mechanics by garage ID",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return nil, fmt.Errorf("find mechanics by garage ID %s: %w", garageID.String(), err)
	}
	defer rows.Close()

	var mechanics []*entity.Mechanic
	for rows.Next() {
		var mechanic entity.Mechanic
		err := rows.Scan(
			&mechanic.ID,
			&mechanic.GarageID,
			&mechanic.Name,
			&mechanic.Phone,
			&mechanic.Specialty,
			&mechanic.IsActive,
			&mechanic.CreatedAt,
			&mechanic.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan mechanic row", zap.Error(err))
			return nil, fmt.Errorf("scan mechanic row: %w", err)
		}
		mechanics = append(mechanics, &mechanic)
	}

	return mechanics, nil
}

func (r *mechanicRepository) Update(ctx context.Context, mechanic *entity.Mechanic) error {
	query := `
		UPDATE mechanics
		SET name = $2, phone = $3, specialty = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		mechanic.ID,
		mechanic.Name,
		mechanic.Phone,
		mechanic.Specialty,
		mechanic.IsActive,
		mechanic.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update mechanic",
			zap.Error(err),
			zap.String("mechanic_id", mechanic.ID.String()),
		)
		return fmt.Errorf("update mechanic %s: %w", mechanic.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mechanic %s not found", mechanic.ID.String())
	}

	return nil
}

func (r *mechanicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE mechanics SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete mechanic",
			zap.Error(err),
			zap.String("mechanic_id", id.String()),
		)
		return fmt.Errorf("delete mechanic %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mechanic %s not found", id.String())
	}

	r.log.Info("Mechanic deleted", zap.String("mechanic_id", id.String()))
	return nil
}
