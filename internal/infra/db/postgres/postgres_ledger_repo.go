package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

var _ repository.LedgerRepository = (*ledgerRepo)(nil)

type ledgerRepo struct{ pool *pgxpool.Pool }

func NewLedgerRepo(pool *pgxpool.Pool) *ledgerRepo {
	return &ledgerRepo{pool: pool}
}

func (r *ledgerRepo) Create(ctx context.Context, tx repository.Tx, rec *model.PaymentRecord) error {
	const q = `
INSERT INTO payment_records (id, client_id, tier_id, amount, mode, is_initial_deposit, payment_date, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`
	_, err := execSQL(ctx, r.pool, tx, q,
		rec.ID, rec.ClientID, rec.TierID, rec.Amount, rec.Mode, rec.IsInitialDeposit, rec.PaymentDate.Time, rec.CreatedAt)
	if err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	return nil
}

func (r *ledgerRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.PaymentRecord, error) {
	const q = `SELECT id, client_id, tier_id, amount, mode, is_initial_deposit, payment_date, created_at FROM payment_records WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	rec := &model.PaymentRecord{}
	if err := row.Scan(&rec.ID, &rec.ClientID, &rec.TierID, &rec.Amount, &rec.Mode, &rec.IsInitialDeposit, &rec.PaymentDate.Time, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return rec, nil
}

// List returns the ledger newest first. Record ids are ULIDs, so the id order
// is also the creation order.
func (r *ledgerRepo) List(ctx context.Context, tx repository.Tx) ([]*model.PaymentRecord, error) {
	const q = `SELECT id, client_id, tier_id, amount, mode, is_initial_deposit, payment_date, created_at FROM payment_records ORDER BY id DESC;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	var out []*model.PaymentRecord
	for rows.Next() {
		rec := &model.PaymentRecord{}
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.TierID, &rec.Amount, &rec.Mode, &rec.IsInitialDeposit, &rec.PaymentDate.Time, &rec.CreatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *ledgerRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM payment_records WHERE id=$1;`, id)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ledgerRepo) SumByPeriod(ctx context.Context, tx repository.Tx, period string) (int64, error) {
	const q = `SELECT COALESCE(SUM(amount),0) FROM payment_records WHERE payment_date >= DATE_TRUNC($1, NOW())::date;`
	row, err := pickRow(ctx, r.pool, tx, q, period)
	if err != nil {
		return 0, err
	}
	var sum int64
	if err := row.Scan(&sum); err != nil {
		return 0, domain.ErrReadDatabaseRow
	}
	return sum, nil
}

func (r *ledgerRepo) CountByMode(ctx context.Context, tx repository.Tx) (map[model.PaymentMode]int, error) {
	const q = `SELECT mode, COUNT(*) FROM payment_records GROUP BY mode;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	out := make(map[model.PaymentMode]int)
	for rows.Next() {
		var mode model.PaymentMode
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out[mode] = count
	}
	return out, rows.Err()
}
