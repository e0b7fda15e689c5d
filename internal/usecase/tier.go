package usecase

import (
	"garage-dashboard/internal/data/entity"
)

// Tier is the trust level a garage has earned through verification.
type Tier string

const (
	TierCertified   Tier = "Certified"
	TierVerified    Tier = "Verified"
	TierProvisional Tier = "Provisional"
	TierUnverified  Tier = "Unverified"
)

// Rank orders tiers from Unverified (0) to Certified (3). Adding
// evidence can only keep the rank or raise it.
func (t Tier) Rank() int {
	switch t {
	case TierCertified:
		return 3
	case TierVerified:
		return 2
	case TierProvisional:
		return 1
	default:
		return 0
	}
}

// Benefits describes what the tier unlocks on the platform.
func (t Tier) Benefits() string {
	switch t {
	case TierCertified:
		return "top visibility, full payouts active"
	case TierVerified:
		return "normal visibility, payouts require bank verification"
	case TierProvisional:
		return "limited visibility, no payouts"
	default:
		return "minimum visibility, no payouts"
	}
}

// Evidence is the per-signal verification state for one garage. Each
// flag is true only after an admin has approved the matching document
// or bank record.
type Evidence struct {
	Identity bool
	Photo    bool
	Address  bool
	Business bool
	Bank     bool
}

type tierRule struct {
	tier    Tier
	matches func(e Evidence) bool
}

// tierRules is evaluated top to bottom; the first matching rule wins.
var tierRules = []tierRule{
	{TierCertified, func(e Evidence) bool {
		return e.Identity && e.Photo && e.Address && e.Business && e.Bank
	}},
	{TierVerified, func(e Evidence) bool {
		return e.Identity && e.Photo && e.Address
	}},
	{TierProvisional, func(e Evidence) bool {
		return e.Identity && e.Photo
	}},
}

// ClassifyTier maps verification evidence to a tier.
func ClassifyTier(e Evidence) Tier {
	for _, rule := range tierRules {
		if rule.matches(e) {
			return rule.tier
		}
	}
	return TierUnverified
}

// BuildEvidence aggregates uploaded documents and the bank record into
// per-signal flags. A signal counts once at least one document of its
// type has been approved; rejected or pending uploads do not count.
func BuildEvidence(docs []*entity.GarageDocument, bank *entity.BankVerification) Evidence {
	var e Evidence
	for _, doc := range docs {
		if !doc.Verified {
			continue
		}
		switch doc.DocumentType {
		case entity.DocumentIdentityProof:
			e.Identity = true
		case entity.DocumentGaragePhoto:
			e.Photo = true
		case entity.DocumentAddressProof:
			e.Address = true
		case entity.DocumentBusinessProof:
			e.Business = true
		}
	}
	if bank != nil && bank.Status == entity.BankStatusVerified {
		e.Bank = true
	}
	return e
}
