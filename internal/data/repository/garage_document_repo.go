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

type GarageDocumentRepository interface {
	Create(ctx context.Context, doc *entity.GarageDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GarageDocument, error)
	FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.GarageDocument, error)
	Review(ctx context.Context, id uuid.UUID, verified bool, rejectionReason *string) error
}

type garageDocumentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGarageDocumentRepository(db database.PgxIface, log *zap.Logger) GarageDocumentRepository {
	return &garageDocumentRepository{
		db:  db,
		log: log.With(zap.String("repository", "garage_document")),
	}
}

func (r *garageDocumentRepository) Create(ctx context.Context, doc *entity.GarageDocument) error {
	query := `
		INSERT INTO garage_documents (id, garage_id, document_type, file_url, verified, rejection_reason, reviewed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		doc.ID,
		doc.GarageID,
		doc.DocumentType,
		doc.FileURL,
		doc.Verified,
		doc.RejectionReason,
		doc.ReviewedAt,
		doc.CreatedAt,
		doc.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create garage document",
			zap.Error(err),
			zap.String("garage_id", doc.GarageID.String()),
			zap.String("document_type", string(doc.DocumentType)),
		)
		return fmt.Errorf("create %s document: %w", string(doc.DocumentType), err)
	}

	return nil
}

func (r *garageDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GarageDocument, error) {
	query := `
		SELECT id, garage_id, document_type, file_url, verified, rejection_reason, reviewed_at, created_at, updated_at
		FROM garage_documents
		WHERE id = $1 AND deleted_at IS NULL
	`

	var doc entity.GarageDocument
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.GarageID,
		&doc.DocumentType,
		&doc.FileURL,
		&doc.Verified,
		&doc.RejectionReason,
		&doc.ReviewedAt,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find garage document by ID",
			zap.Error(err),
			zap.String("document_id", id.String()),
		)
		return nil, fmt.Errorf("find garage document by ID %s: %w", id.String(), err)
	}

	return &doc, nil
}

func (r *garageDocumentRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) ([]*entity.GarageDocument, error) {
	query := `
		SELECT id, garage_id, document_type, file_url, verified, rejection_reason, reviewed_at, created_at, updated_at
		FROM garage_documents
		WHERE garage_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, garageID)
	if err != nil {
		r.log.Error("Failed to find garage documents",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return nil, fmt.Errorf("find garage documents for %s: %w", garageID.String(), err)
	}
	defer rows.Close()

	var docs []*entity.GarageDocument
	for rows.Next() {
		var doc entity.GarageDocument
		err := rows.Scan(
			&doc.ID,
			&doc.GarageID,
			&doc.DocumentType,
			&doc.FileURL,
			&doc.Verified,
			&doc.RejectionReason,
			&doc.ReviewedAt,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan garage document row", zap.Error(err))
			return nil, fmt.Errorf("scan garage document row: %w", err)
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

func (r *garageDocumentRepository) Review(ctx context.Context, id uuid.UUID, verified bool, rejectionReason *string) error {
	query := `
		UPDATE garage_documents
		SET verified = $2, rejection_reason = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, verified, rejectionReason)
	if err != nil {
		r.log.Error("Failed to review garage document",
			zap.Error(err),
			zap.String("document_id", id.String()),
			zap.Bool("verified", verified),
		)
		return fmt.Errorf("review garage document %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("garage document %s not found", id.String())
	}

	return nil
}
