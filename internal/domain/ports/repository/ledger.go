package repository

import (
	"context"

	"elite-gym-console/internal/domain/model"
)

// LedgerRepository is the port for the append-only payment ledger. The engine
// only creates and reads records; Delete exists for the admin console, not
// for the settlement path.
type LedgerRepository interface {
	Create(ctx context.Context, tx Tx, rec *model.PaymentRecord) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.PaymentRecord, error)
	List(ctx context.Context, tx Tx) ([]*model.PaymentRecord, error)
	Delete(ctx context.Context, tx Tx, id string) error
	// SumByPeriod totals record amounts since the start of the current
	// week, month, or year (pass "week" | "month" | "year").
	SumByPeriod(ctx context.Context, tx Tx, period string) (int64, error)
	CountByMode(ctx context.Context, tx Tx) (map[model.PaymentMode]int, error)
}
