package usecase

import (
	"context"

	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
	"elite-gym-console/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

// PaymentUseCase turns submitted plan requests into persisted ledger records.
type PaymentUseCase interface {
	// Submit validates the request, expands it into one or two records, and
	// persists them in primary-then-secondary order. A validation failure
	// returns an error and persists nothing. A persistence failure on the
	// second record returns a partial SettlementResult (Failed set) with a
	// nil error so the caller can retry just the missing leg.
	Submit(ctx context.Context, req model.PlanRequest) (*model.SettlementResult, error)
	// List returns the ledger, newest record first.
	List(ctx context.Context) ([]*model.PaymentRecord, error)
	// Delete removes a record. This is an admin console operation; the
	// settlement path itself never deletes.
	Delete(ctx context.Context, id string) error
}

type paymentUC struct {
	catalog *model.Catalog
	ledger  repository.LedgerRepository
	log     *zerolog.Logger
}

func NewPaymentUseCase(catalog *model.Catalog, ledger repository.LedgerRepository, logger *zerolog.Logger) *paymentUC {
	return &paymentUC{catalog: catalog, ledger: ledger, log: logger}
}

func (u *paymentUC) Submit(ctx context.Context, req model.PlanRequest) (*model.SettlementResult, error) {
	tier, resolved, err := model.ValidatePlanRequest(req, u.catalog)
	if err != nil {
		return nil, err
	}
	if req.PaymentDate.IsZero() {
		req.PaymentDate = model.Today()
	}

	records := model.BuildSettlement(req, tier, resolved)
	result := &model.SettlementResult{}

	// Records are persisted one at a time, never concurrently, so a failure
	// leaves a deterministic prefix of the settlement in the ledger.
	for i, rec := range records {
		if err := u.ledger.Create(ctx, repository.NoTX, rec); err != nil {
			if i == 0 {
				// Nothing persisted yet; the whole submission fails.
				return nil, err
			}
			u.log.Warn().
				Str("record_id", rec.ID).
				Int64("client_id", rec.ClientID).
				Err(err).
				Msg("second settlement leg failed; first leg already persisted")
			metrics.IncFailedSettlementLeg()
			result.Failed = &model.FailedLeg{ClientID: rec.ClientID, Reason: err.Error()}
			return result, nil
		}
		result.Created = append(result.Created, rec)
		metrics.IncPayment(string(rec.Mode), rec.Amount)
	}

	u.log.Info().
		Int("records", len(result.Created)).
		Int64("amount", resolved.AmountDue).
		Str("tier", string(tier.Kind)).
		Str("mode", string(resolved.Mode)).
		Msg("payment settled")
	return result, nil
}

func (u *paymentUC) List(ctx context.Context) ([]*model.PaymentRecord, error) {
	return u.ledger.List(ctx, repository.NoTX)
}

func (u *paymentUC) Delete(ctx context.Context, id string) error {
	return u.ledger.Delete(ctx, repository.NoTX, id)
}
