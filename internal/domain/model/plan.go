package model

import "elite-gym-console/internal/domain"

// PlanRequest is a single submission attempt for a membership payment. It is
// mutated freely while the operator edits the form and consumed exactly once
// on submit; a failed validation returns it to the editable state.
type PlanRequest struct {
	TierID            int64       `json:"tier_id"`
	PrimaryClientID   int64       `json:"primary_client_id"`
	SecondaryClientID *int64      `json:"secondary_client_id,omitempty"`
	Mode              PaymentMode `json:"mode"`
	PaymentDate       Date        `json:"payment_date"`
}

// ResolvedPlan is the derived state of a plan request: what is owed now,
// under which effective mode, and whether a second participant is required.
type ResolvedPlan struct {
	AmountDue            int64       `json:"amount_due"`
	Mode                 PaymentMode `json:"mode"`
	IsInitialDeposit     bool        `json:"is_initial_deposit"`
	RequiresSecondClient bool        `json:"requires_second_client"`
}

// ResolvePlan computes the charge for a tier under the requested mode. It is
// a total function over every (kind, mode) pair and is re-invoked on each
// draft mutation, so it must stay allocation-free and O(1).
//
// The duo promo coerces the mode to full payment rather than rejecting; the
// validator is the gate that still refuses a raw installment duo request.
func ResolvePlan(tier MembershipTier, requested PaymentMode) ResolvedPlan {
	switch {
	case tier.Kind == TierDuoPromo:
		return ResolvedPlan{
			AmountDue:            tier.Price,
			Mode:                 ModeFull,
			RequiresSecondClient: true,
		}
	case tier.Kind == TierIndividual && requested == ModeInstallment:
		// Initial deposit is half the price, rounded down on odd prices.
		return ResolvedPlan{
			AmountDue:        tier.Price / 2,
			Mode:             ModeInstallment,
			IsInitialDeposit: true,
		}
	default:
		return ResolvedPlan{AmountDue: tier.Price, Mode: ModeFull}
	}
}

// ValidatePlanRequest checks the cross-field invariants of a submitted
// request against the catalog. The first failing check wins, so callers can
// surface a single message at a time. On success it returns the resolved
// tier and plan for the settlement builder.
func ValidatePlanRequest(req PlanRequest, catalog *Catalog) (MembershipTier, ResolvedPlan, error) {
	if req.PrimaryClientID == 0 {
		return MembershipTier{}, ResolvedPlan{}, domain.ErrMissingClient
	}
	tier, err := catalog.Lookup(req.TierID)
	if err != nil {
		return MembershipTier{}, ResolvedPlan{}, domain.ErrMissingOrInvalidTier
	}
	resolved := ResolvePlan(tier, req.Mode)
	if resolved.RequiresSecondClient && (req.SecondaryClientID == nil || *req.SecondaryClientID == 0) {
		return MembershipTier{}, ResolvedPlan{}, domain.ErrMissingSecondClient
	}
	if req.SecondaryClientID != nil && *req.SecondaryClientID == req.PrimaryClientID {
		return MembershipTier{}, ResolvedPlan{}, domain.ErrDuplicateClientSelection
	}
	if tier.Kind == TierDuoPromo && req.Mode == ModeInstallment {
		// The resolver silently upgrades to full payment for display, but a
		// raw installment submission must fail loudly instead of charging
		// the full price behind the operator's back.
		return MembershipTier{}, ResolvedPlan{}, domain.ErrPromoInstallment
	}
	if resolved.AmountDue <= 0 {
		return MembershipTier{}, ResolvedPlan{}, domain.ErrInvalidComputedAmount
	}
	return tier, resolved, nil
}

// BuildSettlement expands a validated request into the ledger record drafts
// it settles into: one record normally, two linked records for the duo promo
// (primary first, then secondary, each billed the full promotional price).
// Call only after ValidatePlanRequest succeeds.
func BuildSettlement(req PlanRequest, tier MembershipTier, resolved ResolvedPlan) []*PaymentRecord {
	records := []*PaymentRecord{
		NewPaymentRecord(req.PrimaryClientID, tier.ID, resolved.AmountDue, resolved.Mode, resolved.IsInitialDeposit, req.PaymentDate),
	}
	if resolved.RequiresSecondClient && req.SecondaryClientID != nil {
		records = append(records,
			NewPaymentRecord(*req.SecondaryClientID, tier.ID, resolved.AmountDue, resolved.Mode, resolved.IsInitialDeposit, req.PaymentDate))
	}
	return records
}
