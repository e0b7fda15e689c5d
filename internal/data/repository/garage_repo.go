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

type GarageRepository interface {
	Create(ctx context.Context, garage *entity.Garage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Garage, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Garage, error)
	Update(ctx context.Context, garage *entity.Garage) error
}

type garageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGarageRepository(db database.PgxIface, log *zap.Logger) GarageRepository {
	return &garageRepository{
		db:  db,
		log: log.With(zap.String("repository", "garage")),
	}
}

func (r *garageRepository) Create(ctx context.Context, garage *entity.Garage) error {
	query := `
		INSERT INTO garages (id, owner_id, name, address, city, phone, description, is_open, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		garage.ID,
		garage.OwnerID,
		garage.Name,
		garage.Address,
		garage.City,
		garage.Phone,
		garage.Description,
		garage.IsOpen,
		garage.CreatedAt,
		garage.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create garage",
			zap.Error(err),
			zap.String("owner_id", garage.OwnerID.String()),
		)
		return fmt.Errorf("create garage for owner %s: %w", garage.OwnerID.String(), err)
	}

	return nil
}

func (r *garageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Garage, error) {
	query := `
		SELECT id, owner_id, name, address, city, phone, description, is_open, created_at, updated_at
		FROM garages
		WHERE id = $1 AND deleted_at IS NULL
	`

	var garage entity.Garage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&garage.ID,
		&garage.OwnerID,
		&garage.Name,
		&garage.Address,
		&garage.City,
		&garage.Phone,
		&garage.Description,
		&garage.IsOpen,
		&garage.CreatedAt,
		&garage.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find garage by ID",
			zap.Error(err),
			zap.String("garage_id", id.String()),
		)
		return nil, fmt.Errorf("find garage by ID %s: %w", id.String(), err)
	}

	return &garage, nil
}

func (r *garageRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Garage, error) {
	query := `
		SELECT id, owner_id, name, address, city, phone, description, is_open, created_at, updated_at
		FROM garages
		WHERE owner_id = $1 AND deleted_at IS NULL
	`

	var garage entity.Garage
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&garage.ID,
		&garage.OwnerID,
		&garage.Name,
		&garage.Address,
		&garage.City,
		&garage.Phone,
		&garage.Description,
		&garage.IsOpen,
		&garage.CreatedAt,
		&garage.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find garage by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find garage by owner ID %s: %w", ownerID.String(), err)
	}

	return &garage, nil
}

func (r *garageRepository) Update(ctx context.Context, garage *entity.Garage) error {
	query := `
		UPDATE garages
		SET name = $2, address = $3, city = $4, phone = $5, description = $6,
		    is_open = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		garage.ID,
		garage.Name,
		garage.Address,
		garage.City,
		garage.Phone,
		garage.Description,
		garage.IsOpen,
		garage.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update garage",
			zap.Error(err),
			zap.String("garage_id", garage.ID.String()),
		)
		return fmt.Errorf("update garage %s: %w", garage.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("garage %s not found", garage.ID.String())
	}

	return nil
}
