package usecase

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"
	"garage-dashboard/internal/dto/response"
	"garage-dashboard/pkg/realtime"
	"garage-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VerificationService interface {
	// Owner endpoints.
	UploadDocument(ctx context.Context, ownerID string, req *request.UploadDocumentRequest) (*response.DocumentResponse, error)
	SubmitBankDetails(ctx context.Context, ownerID string, req *request.SubmitBankDetailsRequest) (*response.BankVerificationResponse, error)
	GetStatus(ctx context.Context, ownerID string) (*response.VerificationStatusResponse, error)

	// Admin endpoints.
	GetStatusByGarage(ctx context.Context, garageID string) (*response.VerificationStatusResponse, error)
	ReviewDocument(ctx context.Context, documentID string, req *request.ReviewDocumentRequest) (*response.DocumentResponse, error)
	ReviewBank(ctx context.Context, garageID string, req *request.ReviewBankRequest) (*response.BankVerificationResponse, error)
}

type verificationService struct {
	repo *repository.Repository
	hub  *realtime.Hub
	log  *zap.Logger
}

func NewVerificationService(repo *repository.Repository, hub *realtime.Hub, log *zap.Logger) VerificationService {
	return &verificationService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "verification")),
	}
}

func (s *verificationService) UploadDocument(ctx context.Context, ownerID string, req *request.UploadDocumentRequest) (*response.DocumentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upload document validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &entity.GarageDocument{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GarageID:     garage.ID,
		DocumentType: entity.DocumentType(req.DocumentType),
		FileURL:      req.FileURL,
	}

	if err := s.repo.GarageDocument.Create(ctx, doc); err != nil {
		s.log.Error("Failed to create document", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.Info("Document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("garage_id", garage.ID.String()),
		zap.String("document_type", req.DocumentType),
	)

	resp := response.DocumentToResponse(doc)
	return &resp, nil
}

func (s *verificationService) SubmitBankDetails(ctx context.Context, ownerID string, req *request.SubmitBankDetailsRequest) (*response.BankVerificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit bank details validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &entity.BankVerification{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		GarageID:      garage.ID,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		BranchCode:    req.BranchCode,
		Status:        entity.BankStatusPending,
	}

	// Resubmission replaces the existing record and drops it back to
	// pending until an admin reviews it again.
	if err := s.repo.BankVerification.Upsert(ctx, record); err != nil {
		s.log.Error("Failed to submit bank details", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("submit bank details: %w", err)
	}

	s.log.Info("Bank details submitted",
		zap.String("garage_id", garage.ID.String()),
		zap.String("bank_name", req.BankName),
	)

	resp := response.BankVerificationToResponse(record)
	return &resp, nil
}

// status assembles the full verification picture for one garage.
func (s *verificationService) status(ctx context.Context, garage *entity.Garage) (*response.VerificationStatusResponse, error) {
	docs, err := s.repo.GarageDocument.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get documents", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get documents: %w", err)
	}

	bank, err := s.repo.BankVerification.FindByGarageID(ctx, garage.ID)
	if err != nil {
		s.log.Error("Failed to get bank verification", zap.Error(err), zap.String("garage_id", garage.ID.String()))
		return nil, fmt.Errorf("get bank verification: %w", err)
	}

	evidence := BuildEvidence(docs, bank)
	tier := ClassifyTier(evidence)

	resp := &response.VerificationStatusResponse{
		GarageID: garage.ID,
		Tier:     string(tier),
		Benefits: tier.Benefits(),
		Evidence: response.EvidenceResponse{
			IdentityVerified: evidence.Identity,
			PhotoVerified:    evidence.Photo,
			AddressVerified:  evidence.Address,
			BusinessVerified: evidence.Business,
			BankVerified:     evidence.Bank,
		},
		Documents: response.DocumentsToResponse(docs),
	}
	if bank != nil {
		bankResp := response.BankVerificationToResponse(bank)
		resp.Bank = &bankResp
	}

	return resp, nil
}

func (s *verificationService) GetStatus(ctx context.Context, ownerID string) (*response.VerificationStatusResponse, error) {
	garage, err := garageForOwner(ctx, s.repo, ownerID)
	if err != nil {
		return nil, err
	}

	return s.status(ctx, garage)
}

func (s *verificationService) GetStatusByGarage(ctx context.Context, garageID string) (*response.VerificationStatusResponse, error) {
	id, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	garage, err := s.repo.Garage.FindByID(ctx, id)
	if err != nil || garage == nil {
		return nil, fmt.Errorf("garage %s not found", garageID)
	}

	return s.status(ctx, garage)
}

func (s *verificationService) ReviewDocument(ctx context.Context, documentID string, req *request.ReviewDocumentRequest) (*response.DocumentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review document validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if !req.Verified && req.RejectionReason == "" {
		return nil, fmt.Errorf("validation failed: rejection_reason is required when rejecting")
	}

	id, err := uuid.Parse(documentID)
	if err != nil {
		return nil, fmt.Errorf("invalid document ID format %s: %w", documentID, err)
	}

	doc, err := s.repo.GarageDocument.FindByID(ctx, id)
	if err != nil || doc == nil {
		return nil, fmt.Errorf("document %s not found", documentID)
	}

	var rejectionReason *string
	if !req.Verified {
		rejectionReason = &req.RejectionReason
	}

	if err := s.repo.GarageDocument.Review(ctx, doc.ID, req.Verified, rejectionReason); err != nil {
		s.log.Error("Failed to review document", zap.Error(err), zap.String("document_id", documentID))
		return nil, fmt.Errorf("review document: %w", err)
	}

	now := time.Now()
	doc.Verified = req.Verified
	doc.RejectionReason = rejectionReason
	doc.ReviewedAt = &now
	doc.UpdatedAt = now

	s.log.Info("Document reviewed",
		zap.String("document_id", documentID),
		zap.String("garage_id", doc.GarageID.String()),
		zap.String("document_type", string(doc.DocumentType)),
		zap.Bool("verified", req.Verified),
	)

	outcome := "approved"
	if !req.Verified {
		outcome = "rejected"
	}
	notifyGarage(ctx, s.repo, s.hub, s.log, doc.GarageID, entity.NotifDocumentReviewed,
		"Document reviewed",
		fmt.Sprintf("Your %s was %s", doc.DocumentType, outcome))

	resp := response.DocumentToResponse(doc)
	return &resp, nil
}

func (s *verificationService) ReviewBank(ctx context.Context, garageID string, req *request.ReviewBankRequest) (*response.BankVerificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review bank validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	status := entity.BankStatus(req.Status)
	if status == entity.BankStatusRejected && req.RejectionReason == "" {
		return nil, fmt.Errorf("validation failed: rejection_reason is required when rejecting")
	}

	id, err := uuid.Parse(garageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garage ID format %s: %w", garageID, err)
	}

	record, err := s.repo.BankVerification.FindByGarageID(ctx, id)
	if err != nil || record == nil {
		return nil, fmt.Errorf("bank verification not found for garage %s", garageID)
	}

	var rejectionReason *string
	if status == entity.BankStatusRejected {
		rejectionReason = &req.RejectionReason
	}

	if err := s.repo.BankVerification.UpdateStatus(ctx, id, status, rejectionReason); err != nil {
		s.log.Error("Failed to review bank details", zap.Error(err), zap.String("garage_id", garageID))
		return nil, fmt.Errorf("review bank details: %w", err)
	}

	record.Status = status
	record.RejectionReason = rejectionReason
	record.UpdatedAt = time.Now()

	s.log.Info("Bank details reviewed",
		zap.String("garage_id", garageID),
		zap.String("status", req.Status),
	)

	outcome := "approved"
	if status == entity.BankStatusRejected {
		outcome = "rejected"
	}
	notifyGarage(ctx, s.repo, s.hub, s.log, id, entity.NotifBankReviewed,
		"Bank details reviewed",
		fmt.Sprintf("Your bank details were %s", outcome))

	resp := response.BankVerificationToResponse(record)
	return &resp, nil
}
