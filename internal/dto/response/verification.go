package response

import (
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	ID              uuid.UUID  `json:"id"`
	GarageID        uuid.UUID  `json:"garage_id"`
	DocumentType    string     `json:"document_type"`
	FileURL         string     `json:"file_url"`
	Verified        bool       `json:"verified"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func DocumentToResponse(d *entity.GarageDocument) DocumentResponse {
	return DocumentResponse{
		ID:              d.ID,
		GarageID:        d.GarageID,
		DocumentType:    string(d.DocumentType),
		FileURL:         d.FileURL,
		Verified:        d.Verified,
		RejectionReason: d.RejectionReason,
		ReviewedAt:      d.ReviewedAt,
		CreatedAt:       d.CreatedAt,
	}
}

func DocumentsToResponse(items []*entity.GarageDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, DocumentToResponse(item))
	}
	return out
}

type BankVerificationResponse struct {
	GarageID        uuid.UUID `json:"garage_id"`
	AccountHolder   string    `json:"account_holder"`
	AccountNumber   string    `json:"account_number"`
	BankName        string    `json:"bank_name"`
	BranchCode      string    `json:"branch_code,omitempty"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func BankVerificationToResponse(b *entity.BankVerification) BankVerificationResponse {
	return BankVerificationResponse{
		GarageID:        b.GarageID,
		AccountHolder:   b.AccountHolder,
		AccountNumber:   maskAccountNumber(b.AccountNumber),
		BankName:        b.BankName,
		BranchCode:      b.BranchCode,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		UpdatedAt:       b.UpdatedAt,
	}
}

// maskAccountNumber keeps only the last four digits.
func maskAccountNumber(s string) string {
	if len(s) <= 4 {
		return s
	}
	masked := make([]byte, len(s)-4)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked) + s[len(s)-4:]
}

// EvidenceResponse is the per-signal verification state used by the
// tier classifier.
type EvidenceResponse struct {
	IdentityVerified bool `json:"identity_verified"`
	PhotoVerified    bool `json:"photo_verified"`
	AddressVerified  bool `json:"address_verified"`
	BusinessVerified bool `json:"business_verified"`
	BankVerified     bool `json:"bank_verified"`
}

type VerificationStatusResponse struct {
	GarageID  uuid.UUID                 `json:"garage_id"`
	Tier      string                    `json:"tier"`
	Benefits  string                    `json:"benefits"`
	Evidence  EvidenceResponse          `json:"evidence"`
	Documents []DocumentResponse        `json:"documents"`
	Bank      *BankVerificationResponse `json:"bank,omitempty"`
}
