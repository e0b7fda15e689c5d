package usecase

import (
	"testing"
	"time"

	"garage-dashboard/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// expectedTier mirrors the classification rules independently so the
// exhaustive sweep below cannot share a bug with the implementation.
func expectedTier(e Evidence) Tier {
	switch {
	case e.Identity && e.Photo && e.Address && e.Business && e.Bank:
		return TierCertified
	case e.Identity && e.Photo && e.Address:
		return TierVerified
	case e.Identity && e.Photo:
		return TierProvisional
	default:
		return TierUnverified
	}
}

func TestClassifyTier_AllCombinations(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		e := Evidence{
			Identity: mask&1 != 0,
			Photo:    mask&2 != 0,
			Address:  mask&4 != 0,
			Business: mask&8 != 0,
			Bank:     mask&16 != 0,
		}
		assert.Equal(t, expectedTier(e), ClassifyTier(e), "evidence %+v", e)
	}
}

func TestClassifyTier_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		evidence Evidence
		expected Tier
	}{
		{"nothing verified", Evidence{}, TierUnverified},
		{"identity alone", Evidence{Identity: true}, TierUnverified},
		{"photo alone", Evidence{Photo: true}, TierUnverified},
		{"identity and photo", Evidence{Identity: true, Photo: true}, TierProvisional},
		{"identity photo address", Evidence{Identity: true, Photo: true, Address: true}, TierVerified},
		{"all but bank", Evidence{Identity: true, Photo: true, Address: true, Business: true}, TierVerified},
		{"all but business", Evidence{Identity: true, Photo: true, Address: true, Bank: true}, TierVerified},
		{"everything", Evidence{Identity: true, Photo: true, Address: true, Business: true, Bank: true}, TierCertified},
		{"bank without identity", Evidence{Bank: true}, TierUnverified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyTier(tc.evidence))
		})
	}
}

// Adding one more verified signal must never lower the tier.
func TestClassifyTier_Monotonic(t *testing.T) {
	flags := []func(e *Evidence){
		func(e *Evidence) { e.Identity = true },
		func(e *Evidence) { e.Photo = true },
		func(e *Evidence) { e.Address = true },
		func(e *Evidence) { e.Business = true },
		func(e *Evidence) { e.Bank = true },
	}

	for mask := 0; mask < 32; mask++ {
		base := Evidence{
			Identity: mask&1 != 0,
			Photo:    mask&2 != 0,
			Address:  mask&4 != 0,
			Business: mask&8 != 0,
			Bank:     mask&16 != 0,
		}
		baseRank := ClassifyTier(base).Rank()

		for i, set := range flags {
			if mask&(1<<i) != 0 {
				continue
			}
			more := base
			set(&more)
			assert.GreaterOrEqual(t, ClassifyTier(more).Rank(), baseRank,
				"adding evidence to %+v lowered the tier", base)
		}
	}
}

func TestTierBenefits(t *testing.T) {
	assert.Equal(t, "top visibility, full payouts active", TierCertified.Benefits())
	assert.Equal(t, "normal visibility, payouts require bank verification", TierVerified.Benefits())
	assert.Equal(t, "limited visibility, no payouts", TierProvisional.Benefits())
	assert.Equal(t, "minimum visibility, no payouts", TierUnverified.Benefits())
}

func TestTierRank(t *testing.T) {
	assert.Equal(t, 3, TierCertified.Rank())
	assert.Equal(t, 2, TierVerified.Rank())
	assert.Equal(t, 1, TierProvisional.Rank())
	assert.Equal(t, 0, TierUnverified.Rank())
}

func TestBuildEvidence(t *testing.T) {
	garageID := uuid.New()

	doc := func(docType entity.DocumentType, verified bool) *entity.GarageDocument {
		return &entity.GarageDocument{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
			GarageID:     garageID,
			DocumentType: docType,
			Verified:     verified,
		}
	}

	t.Run("approved documents count", func(t *testing.T) {
		e := BuildEvidence([]*entity.GarageDocument{
			doc(entity.DocumentIdentityProof, true),
			doc(entity.DocumentGaragePhoto, true),
			doc(entity.DocumentAddressProof, false),
		}, nil)

		assert.True(t, e.Identity)
		assert.True(t, e.Photo)
		assert.False(t, e.Address)
		assert.False(t, e.Business)
		assert.False(t, e.Bank)
	})

	t.Run("any approved upload of a type counts", func(t *testing.T) {
		e := BuildEvidence([]*entity.GarageDocument{
			doc(entity.DocumentIdentityProof, false),
			doc(entity.DocumentIdentityProof, true),
		}, nil)

		assert.True(t, e.Identity)
	})

	t.Run("pending bank record does not count", func(t *testing.T) {
		bank := &entity.BankVerification{GarageID: garageID, Status: entity.BankStatusPending}
		e := BuildEvidence(nil, bank)
		assert.False(t, e.Bank)
	})

	t.Run("verified bank record counts", func(t *testing.T) {
		bank := &entity.BankVerification{GarageID: garageID, Status: entity.BankStatusVerified}
		e := BuildEvidence(nil, bank)
		assert.True(t, e.Bank)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Equal(t, Evidence{}, BuildEvidence(nil, nil))
	})
}
