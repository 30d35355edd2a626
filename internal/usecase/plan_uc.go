package usecase

import (
	"elite-gym-console/internal/domain/model"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ PlanUseCase = (*planUC)(nil)

// PlanUseCase exposes the membership catalog and the payment plan resolver
// to the console. Resolve is called on every form mutation, not only on
// submit, so the displayed amount never goes stale.
type PlanUseCase interface {
	// Tiers returns the fixed catalog in display order.
	Tiers() []model.MembershipTier
	// Resolve computes the charge for a tier under the requested mode.
	Resolve(tierID int64, mode model.PaymentMode) (model.ResolvedPlan, error)
}

type planUC struct {
	catalog *model.Catalog
	log     *zerolog.Logger
}

func NewPlanUseCase(catalog *model.Catalog, logger *zerolog.Logger) *planUC {
	return &planUC{catalog: catalog, log: logger}
}

func (u *planUC) Tiers() []model.MembershipTier {
	return u.catalog.List()
}

func (u *planUC) Resolve(tierID int64, mode model.PaymentMode) (model.ResolvedPlan, error) {
	tier, err := u.catalog.Lookup(tierID)
	if err != nil {
		return model.ResolvedPlan{}, err
	}
	return model.ResolvePlan(tier, mode), nil
}
