package usecase

import (
	"context"
	"testing"
	"time"

	"garage-dashboard/internal/data/entity"
	"garage-dashboard/internal/data/repository"
	"garage-dashboard/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type verificationFixture struct {
	svc    *verificationService
	garage *entity.Garage
	docs   *fakeDocumentRepo
	bank   *fakeBankRepo
	notes  *fakeNotificationRepo
}

func newVerificationFixture() *verificationFixture {
	garage := &entity.Garage{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OwnerID: uuid.New(),
		Name:    "Test Garage",
		IsOpen:  true,
	}

	docs := &fakeDocumentRepo{}
	bank := &fakeBankRepo{}
	notes := &fakeNotificationRepo{}

	repo := &repository.Repository{
		Garage:           &fakeGarageRepo{garages: []*entity.Garage{garage}},
		GarageDocument:   docs,
		BankVerification: bank,
		Notification:     notes,
	}

	svc := NewVerificationService(repo, nil, zap.NewNop()).(*verificationService)
	return &verificationFixture{svc: svc, garage: garage, docs: docs, bank: bank, notes: notes}
}

func approvedDoc(garageID uuid.UUID, docType entity.DocumentType) *entity.GarageDocument {
	now := time.Now()
	return &entity.GarageDocument{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		GarageID:     garageID,
		DocumentType: docType,
		FileURL:      "https://files.example.com/doc.pdf",
		Verified:     true,
		ReviewedAt:   &now,
	}
}

func TestGetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh garage is unverified", func(t *testing.T) {
		f := newVerificationFixture()

		resp, err := f.svc.GetStatus(ctx, f.garage.OwnerID.String())
		require.NoError(t, err)
		assert.Equal(t, string(TierUnverified), resp.Tier)
		assert.Equal(t, TierUnverified.Benefits(), resp.Benefits)
		assert.False(t, resp.Evidence.IdentityVerified)
		assert.Nil(t, resp.Bank)
		assert.Empty(t, resp.Documents)
	})

	t.Run("identity and photo reach provisional", func(t *testing.T) {
		f := newVerificationFixture()
		f.docs.docs = []*entity.GarageDocument{
			approvedDoc(f.garage.ID, entity.DocumentIdentityProof),
			approvedDoc(f.garage.ID, entity.DocumentGaragePhoto),
		}

		resp, err := f.svc.GetStatus(ctx, f.garage.OwnerID.String())
		require.NoError(t, err)
		assert.Equal(t, string(TierProvisional), resp.Tier)
		assert.True(t, resp.Evidence.IdentityVerified)
		assert.True(t, resp.Evidence.PhotoVerified)
		assert.False(t, resp.Evidence.AddressVerified)
	})

	t.Run("all evidence reaches certified", func(t *testing.T) {
		f := newVerificationFixture()
		f.docs.docs = []*entity.GarageDocument{
			approvedDoc(f.garage.ID, entity.DocumentIdentityProof),
			approvedDoc(f.garage.ID, entity.DocumentGaragePhoto),
			approvedDoc(f.garage.ID, entity.DocumentAddressProof),
			approvedDoc(f.garage.ID, entity.DocumentBusinessProof),
		}
		f.bank.record = &entity.BankVerification{
			Base:          entity.Base{ID: uuid.New()},
			GarageID:      f.garage.ID,
			AccountNumber: "12345678",
			Status:        entity.BankStatusVerified,
		}

		resp, err := f.svc.GetStatus(ctx, f.garage.OwnerID.String())
		require.NoError(t, err)
		assert.Equal(t, string(TierCertified), resp.Tier)
		assert.Equal(t, "top visibility, full payouts active", resp.Benefits)
		require.NotNil(t, resp.Bank)
		// Account numbers never leave the API unmasked.
		assert.NotContains(t, resp.Bank.AccountNumber, "1234")
		assert.Contains(t, resp.Bank.AccountNumber, "5678")
	})

	t.Run("pending bank keeps the tier at verified", func(t *testing.T) {
		f := newVerificationFixture()
		f.docs.docs = []*entity.GarageDocument{
			approvedDoc(f.garage.ID, entity.DocumentIdentityProof),
			approvedDoc(f.garage.ID, entity.DocumentGaragePhoto),
			approvedDoc(f.garage.ID, entity.DocumentAddressProof),
			approvedDoc(f.garage.ID, entity.DocumentBusinessProof),
		}
		f.bank.record = &entity.BankVerification{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: f.garage.ID,
			Status:   entity.BankStatusPending,
		}

		resp, err := f.svc.GetStatus(ctx, f.garage.OwnerID.String())
		require.NoError(t, err)
		assert.Equal(t, string(TierVerified), resp.Tier)
	})

	t.Run("owner without a garage", func(t *testing.T) {
		f := newVerificationFixture()

		_, err := f.svc.GetStatus(ctx, uuid.New().String())
		assert.ErrorContains(t, err, "not found")
	})
}

func TestUploadDocument(t *testing.T) {
	ctx := context.Background()
	f := newVerificationFixture()

	resp, err := f.svc.UploadDocument(ctx, f.garage.OwnerID.String(), &request.UploadDocumentRequest{
		DocumentType: "identity_proof",
		FileURL:      "https://files.example.com/id.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "identity_proof", resp.DocumentType)
	assert.False(t, resp.Verified)
	require.Len(t, f.docs.docs, 1)
	assert.Equal(t, f.garage.ID, f.docs.docs[0].GarageID)
}

func TestReviewDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		f := newVerificationFixture()
		doc := approvedDoc(f.garage.ID, entity.DocumentIdentityProof)
		doc.Verified = false
		doc.ReviewedAt = nil
		f.docs.docs = []*entity.GarageDocument{doc}

		resp, err := f.svc.ReviewDocument(ctx, doc.ID.String(), &request.ReviewDocumentRequest{Verified: true})
		require.NoError(t, err)
		assert.True(t, resp.Verified)
		assert.NotNil(t, doc.ReviewedAt)

		require.Len(t, f.notes.created, 1)
		assert.Equal(t, entity.NotifDocumentReviewed, f.notes.created[0].Type)
		assert.Contains(t, f.notes.created[0].Message, "approved")
	})

	t.Run("reject with a reason", func(t *testing.T) {
		f := newVerificationFixture()
		doc := approvedDoc(f.garage.ID, entity.DocumentGaragePhoto)
		doc.Verified = false
		f.docs.docs = []*entity.GarageDocument{doc}

		resp, err := f.svc.ReviewDocument(ctx, doc.ID.String(), &request.ReviewDocumentRequest{
			Verified:        false,
			RejectionReason: "photo is too blurry",
		})
		require.NoError(t, err)
		assert.False(t, resp.Verified)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "photo is too blurry", *resp.RejectionReason)
	})

	t.Run("reject without a reason fails", func(t *testing.T) {
		f := newVerificationFixture()
		doc := approvedDoc(f.garage.ID, entity.DocumentGaragePhoto)
		f.docs.docs = []*entity.GarageDocument{doc}

		_, err := f.svc.ReviewDocument(ctx, doc.ID.String(), &request.ReviewDocumentRequest{Verified: false})
		assert.ErrorContains(t, err, "validation failed")
	})

	t.Run("unknown document", func(t *testing.T) {
		f := newVerificationFixture()

		_, err := f.svc.ReviewDocument(ctx, uuid.New().String(), &request.ReviewDocumentRequest{Verified: true})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestSubmitBankDetails(t *testing.T) {
	ctx := context.Background()

	submit := func(f *verificationFixture) error {
		_, err := f.svc.SubmitBankDetails(ctx, f.garage.OwnerID.String(), &request.SubmitBankDetailsRequest{
			AccountHolder: "Test Garage LLC",
			AccountNumber: "0011223344",
			BankName:      "First Street Bank",
			BranchCode:    "001",
		})
		return err
	}

	t.Run("new submission is pending", func(t *testing.T) {
		f := newVerificationFixture()

		require.NoError(t, submit(f))
		require.NotNil(t, f.bank.record)
		assert.Equal(t, entity.BankStatusPending, f.bank.record.Status)
	})

	t.Run("resubmission drops a verified record back to pending", func(t *testing.T) {
		f := newVerificationFixture()
		f.bank.record = &entity.BankVerification{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: f.garage.ID,
			Status:   entity.BankStatusVerified,
		}

		require.NoError(t, submit(f))
		assert.Equal(t, entity.BankStatusPending, f.bank.record.Status)
	})
}

func TestReviewBank(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		f := newVerificationFixture()
		f.bank.record = &entity.BankVerification{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: f.garage.ID,
			Status:   entity.BankStatusPending,
		}

		resp, err := f.svc.ReviewBank(ctx, f.garage.ID.String(), &request.ReviewBankRequest{Status: "verified"})
		require.NoError(t, err)
		assert.Equal(t, "verified", resp.Status)
		assert.Equal(t, entity.BankStatusVerified, f.bank.record.Status)

		require.Len(t, f.notes.created, 1)
		assert.Equal(t, entity.NotifBankReviewed, f.notes.created[0].Type)
	})

	t.Run("reject without a reason fails", func(t *testing.T) {
		f := newVerificationFixture()
		f.bank.record = &entity.BankVerification{
			Base:     entity.Base{ID: uuid.New()},
			GarageID: f.garage.ID,
			Status:   entity.BankStatusPending,
		}

		_, err := f.svc.ReviewBank(ctx, f.garage.ID.String(), &request.ReviewBankRequest{Status: "rejected"})
		assert.ErrorContains(t, err, "validation failed")
	})

	t.Run("no submission yet", func(t *testing.T) {
		f := newVerificationFixture()

		_, err := f.svc.ReviewBank(ctx, f.garage.ID.String(), &request.ReviewBankRequest{Status: "verified"})
		assert.ErrorContains(t, err, "not found")
	})
}
