package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

var _ repository.SaleRepository = (*saleRepo)(nil)

type saleRepo struct{ pool *pgxpool.Pool }

func NewSaleRepo(pool *pgxpool.Pool) *saleRepo {
	return &saleRepo{pool: pool}
}

// Save inserts the sale and its lines. Callers run it inside the sale
// transaction together with the stock decrements.
func (r *saleRepo) Save(ctx context.Context, tx repository.Tx, s *model.Sale) error {
	const q = `
INSERT INTO sales (id, client_id, payment_method, total, created_at)
VALUES ($1,$2,$3,$4,$5);`
	if _, err := execSQL(ctx, r.pool, tx, q, s.ID, s.ClientID, s.PaymentMethod, s.Total, s.CreatedAt); err != nil {
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}

	const qi = `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price) VALUES ($1,$2,$3,$4);`
	for _, it := range s.Items {
		if _, err := execSQL(ctx, r.pool, tx, qi, s.ID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return domain.ErrOperationFailed
		}
	}
	return nil
}

func (r *saleRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Sale, error) {
	const q = `
SELECT s.id, s.client_id, s.payment_method, s.total, s.created_at,
       i.product_id, i.quantity, i.unit_price
FROM sales s
JOIN sale_items i ON i.sale_id = s.id
ORDER BY s.created_at DESC, s.id;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	var out []*model.Sale
	byID := make(map[string]*model.Sale)
	for rows.Next() {
		var (
			s  model.Sale
			it model.SaleItem
		)
		if err := rows.Scan(&s.ID, &s.ClientID, &s.PaymentMethod, &s.Total, &s.CreatedAt, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		sale, ok := byID[s.ID]
		if !ok {
			cp := s
			sale = &cp
			byID[s.ID] = sale
			out = append(out, sale)
		}
		sale.Items = append(sale.Items, it)
	}
	return out, rows.Err()
}

func (r *saleRepo) SumByPeriod(ctx context.Context, tx repository.Tx, period string) (int64, error) {
	const q = `SELECT COALESCE(SUM(total),0) FROM sales WHERE created_at >= DATE_TRUNC($1, NOW());`
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

func (r *saleRepo) TopProducts(ctx context.Context, tx repository.Tx, limit int) ([]repository.ProductUnits, error) {
	if limit <= 0 {
		limit = 5
	}
	const q = `
SELECT p.id, p.name, SUM(i.quantity) AS units
FROM sale_items i
JOIN products p ON p.id = i.product_id
GROUP BY p.id, p.name
ORDER BY units DESC
LIMIT $1;`
	rows, err := queryRows(ctx, r.pool, tx, q, limit)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	var out []repository.ProductUnits
	for rows.Next() {
		var pu repository.ProductUnits
		if err := rows.Scan(&pu.ProductID, &pu.Name, &pu.Units); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, pu)
	}
	return out, rows.Err()
}
