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

type BankVerificationRepository interface {
	// Upsert inserts or replaces the single bank record for a garage.
	Upsert(ctx context.Context, record *entity.BankVerification) error
	FindByGarageID(ctx context.Context, garageID uuid.UUID) (*entity.BankVerification, error)
	UpdateStatus(ctx context.Context, garageID uuid.UUID, status entity.BankStatus, rejectionReason *string) error
}

type bankVerificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBankVerificationRepository(db database.PgxIface, log *zap.Logger) BankVerificationRepository {
	return &bankVerificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "bank_verification")),
	}
}

func (r *bankVerificationRepository) Upsert(ctx context.Context, record *entity.BankVerification) error {
	query := `
		INSERT INTO bank_verifications (id, garage_id, account_holder, account_number, bank_name,
		                                branch_code, status, rejection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (garage_id) DO UPDATE
		SET account_holder = EXCLUDED.account_holder,
		    account_number = EXCLUDED.account_number,
		    bank_name = EXCLUDED.bank_name,
		    branch_code = EXCLUDED.branch_code,
		    status = EXCLUDED.status,
		    rejection_reason = NULL,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.GarageID,
		record.AccountHolder,
		record.AccountNumber,
		record.BankName,
		record.BranchCode,
		record.Status,
		record.RejectionReason,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert bank verification",
			zap.Error(err),
			zap.String("garage_id", record.GarageID.String()),
		)
		return fmt.Errorf("upsert bank verification for %s: %w", record.GarageID.String(), err)
	}

	return nil
}

func (r *bankVerificationRepository) FindByGarageID(ctx context.Context, garageID uuid.UUID) (*entity.BankVerification, error) {
	query := `
		SELECT id, garage_id, account_holder, account_number, bank_name, branch_code,
		       status, rejection_reason, created_at, updated_at
		FROM bank_verifications
		WHERE garage_id = $1
	`

	var record entity.BankVerification
	err := r.db.QueryRow(ctx, query, garageID).Scan(
		&record.ID,
		&record.GarageID,
		&record.AccountHolder,
		&record.AccountNumber,
		&record.BankName,
		&record.BranchCode,
		&record.Status,
		&record.RejectionReason,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bank verification",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
		)
		return nil, fmt.Errorf("find bank verification for %s: %w", garageID.String(), err)
	}

	return &record, nil
}

func (r *bankVerificationRepository) UpdateStatus(ctx context.Context, garageID uuid.UUID, status entity.BankStatus, rejectionReason *string) error {
	query := `
		UPDATE bank_verifications
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE garage_id = $1
	`

	result, err := r.db.Exec(ctx, query, garageID, status, rejectionReason)
	if err != nil {
		r.log.Error("Failed to update bank verification status",
			zap.Error(err),
			zap.String("garage_id", garageID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update bank verification for %s: %w", garageID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bank verification for garage %s not found", garageID.String())
	}

	return nil
}
