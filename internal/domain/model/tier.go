package model

import "elite-gym-console/internal/domain"

// TierKind discriminates the three purchasable membership categories.
type TierKind string

const (
	TierDayPass    TierKind = "day_pass"
	TierIndividual TierKind = "individual"
	TierDuoPromo   TierKind = "duo_promo"
)

// PaymentMode is how a membership is paid for.
type PaymentMode string

const (
	ModeFull        PaymentMode = "full"
	ModeInstallment PaymentMode = "installment"
)

// MembershipTier is a catalog entry. Tiers are fixed product definitions,
// never persisted and never mutated.
type MembershipTier struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          int64    `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Kind           TierKind `json:"kind"`
}

// Catalog is the fixed set of purchasable tiers, exactly one per kind.
type Catalog struct {
	tiers []MembershipTier
}

// DefaultCatalog returns the three product-defined tiers. Prices are whole
// currency units set by the business, not computed.
func DefaultCatalog() *Catalog {
	return &Catalog{tiers: []MembershipTier{
		{ID: 1, Name: "Day Pass", Price: 4000, DurationMonths: 0, Kind: TierDayPass},
		{ID: 2, Name: "Individual", Price: 55000, DurationMonths: 1, Kind: TierIndividual},
		{ID: 3, Name: "Duo Promo", Price: 100000, DurationMonths: 1, Kind: TierDuoPromo},
	}}
}

// Lookup returns the tier with the given id or domain.ErrInvalidTierID.
func (c *Catalog) Lookup(id int64) (MembershipTier, error) {
	for _, t := range c.tiers {
		if t.ID == id {
			return t, nil
		}
	}
	return MembershipTier{}, domain.ErrInvalidTierID
}

// List returns all tiers in catalog order.
func (c *Catalog) List() []MembershipTier {
	out := make([]MembershipTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}
