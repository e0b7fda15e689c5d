package entity

import (
	"github.com/google/uuid"
)

type BankStatus string

const (
	BankStatusPending  BankStatus = "pending"
	BankStatusVerified BankStatus = "verified"
	BankStatusRejected BankStatus = "rejected"
)

// BankVerification holds the payout account for a garage. At most one
// row per garage; resubmission overwrites the existing row.
type BankVerification struct {
	Base
	GarageID        uuid.UUID  `db:"garage_id"`
	AccountHolder   string     `db:"account_holder"`
	AccountNumber   string     `db:"account_number"`
	BankName        string     `db:"bank_name"`
	BranchCode      string     `db:"branch_code"`
	Status          BankStatus `db:"status"`
	RejectionReason *string    `db:"rejection_reason"`
}
