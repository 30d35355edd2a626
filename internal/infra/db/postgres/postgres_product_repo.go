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

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct{ pool *pgxpool.Pool }

func NewProductRepo(pool *pgxpool.Pool) *productRepo {
	return &productRepo{pool: pool}
}

func (r *productRepo) Save(ctx context.Context, tx repository.Tx, p *model.Product) error {
	if p.ID == 0 {
		const q = `
INSERT INTO products (name, price, stock, category, description)
VALUES ($1,$2,$3,$4,$5) RETURNING id;`
		row, err := pickRow(ctx, r.pool, tx, q, p.Name, p.Price, p.Stock, p.Category, p.Description)
		if err != nil {
			return err
		}
		if err := row.Scan(&p.ID); err != nil {
			return domain.ErrOperationFailed
		}
		return nil
	}

	const q = `UPDATE products SET name=$2, price=$3, stock=$4, category=$5, description=$6 WHERE id=$1;`
	tag, err := execSQL(ctx, r.pool, tx, q, p.ID, p.Name, p.Price, p.Stock, p.Category, p.Description)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Product, error) {
	const q = `SELECT id, name, price, stock, category, description FROM products WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	p := &model.Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return p, nil
}

func (r *productRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Product, error) {
	const q = `SELECT id, name, price, stock, category, description FROM products ORDER BY name;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	var out []*model.Product
	for rows.Next() {
		p := &model.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Description); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productRepo) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM products WHERE id=$1;`, id)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock guards against oversell in SQL so concurrent sales cannot
// drive stock negative.
func (r *productRepo) DecrementStock(ctx context.Context, tx repository.Tx, productID int64, quantity int) error {
	const q = `UPDATE products SET stock = stock - $2 WHERE id=$1 AND stock >= $2;`
	tag, err := execSQL(ctx, r.pool, tx, q, productID, quantity)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindByID(ctx, tx, productID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
