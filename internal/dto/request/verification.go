package request

type UploadDocumentRequest struct {
	DocumentType string `json:"document_type" validate:"required,oneof=identity_proof garage_photo address_proof business_proof"`
	FileURL      string `json:"file_url" validate:"required,url"`
}

type ReviewDocumentRequest struct {
	Verified        bool   `json:"verified"`
	RejectionReason string `json:"rejection_reason" validate:"max=500"`
}

type SubmitBankDetailsRequest struct {
	AccountHolder string `json:"account_holder" validate:"required,min=2,max=150"`
	AccountNumber string `json:"account_number" validate:"required,min=6,max=34"`
	BankName      string `json:"bank_name" validate:"required,max=150"`
	BranchCode    string `json:"branch_code" validate:"max=20"`
}

type ReviewBankRequest struct {
	Status          string `json:"status" validate:"required,oneof=verified rejected"`
	RejectionReason string `json:"rejection_reason" validate:"max=500"`
}
