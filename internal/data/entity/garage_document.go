package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentIdentityProof DocumentType = "identity_proof"
	DocumentGaragePhoto   DocumentType = "garage_photo"
	DocumentAddressProof  DocumentType = "address_proof"
	DocumentBusinessProof DocumentType = "business_proof"
)

// DocumentTypes lists every accepted evidence type.
var DocumentTypes = []DocumentType{
	DocumentIdentityProof,
	DocumentGaragePhoto,
	DocumentAddressProof,
	DocumentBusinessProof,
}

// GarageDocument is uploaded verification evidence. The file itself
// lives in external object storage; only the URL is kept here.
type GarageDocument struct {
	Base
	GarageID        uuid.UUID    `db:"garage_id"`
	DocumentType    DocumentType `db:"document_type"`
	FileURL         string       `db:"file_url"`
	Verified        bool         `db:"verified"`
	RejectionReason *string      `db:"rejection_reason"`
	ReviewedAt      *time.Time   `db:"reviewed_at"`
}
