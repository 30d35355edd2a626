package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

var _ repository.ClientRepository = (*clientRepo)(nil)

type clientRepo struct{ pool *pgxpool.Pool }

func NewClientRepo(pool *pgxpool.Pool) *clientRepo {
	return &clientRepo{pool: pool}
}

const uniqueViolation = "23505"

func (r *clientRepo) Save(ctx context.Context, tx repository.Tx, c *model.Client) error {
	if c.ID == 0 {
		const q = `
INSERT INTO clients (name, surname, national_id, phone, email, registered_at)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id;`
		row, err := pickRow(ctx, r.pool, tx, q, c.Name, c.Surname, c.NationalID, c.Phone, c.Email, c.RegisteredAt.Time)
		if err != nil {
			return err
		}
		if err := row.Scan(&c.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrAlreadyExists
			}
			return domain.ErrOperationFailed
		}
		return nil
	}

	const q = `
UPDATE clients SET name=$2, surname=$3, national_id=$4, phone=$5, email=$6, registered_at=$7
WHERE id=$1;`
	tag, err := execSQL(ctx, r.pool, tx, q, c.ID, c.Name, c.Surname, c.NationalID, c.Phone, c.Email, c.RegisteredAt.Time)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyExists
		}
		if err == domain.ErrInvalidArgument || err == domain.ErrInvalidExecContext {
			return err
		}
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepo) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Client, error) {
	const q = `SELECT id, name, surname, national_id, phone, email, registered_at FROM clients WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanClient(row)
}

func (r *clientRepo) FindByNationalID(ctx context.Context, tx repository.Tx, nationalID string) (*model.Client, error) {
	const q = `SELECT id, name, surname, national_id, phone, email, registered_at FROM clients WHERE national_id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, nationalID)
	if err != nil {
		return nil, err
	}
	return scanClient(row)
}

func (r *clientRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Client, error) {
	const q = `SELECT id, name, surname, national_id, phone, email, registered_at FROM clients ORDER BY surname, name;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	defer rows.Close()

	var out []*model.Client
	for rows.Next() {
		c := &model.Client{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.NationalID, &c.Phone, &c.Email, &c.RegisteredAt.Time); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientRepo) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM clients WHERE id=$1;`, id)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*model.Client, error) {
	c := &model.Client{}
	if err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.NationalID, &c.Phone, &c.Email, &c.RegisteredAt.Time); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return c, nil
}
