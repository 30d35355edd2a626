package repository

import (
	"context"

	"elite-gym-console/internal/domain/model"
)

// ClientRepository is the port for the member registry.
type ClientRepository interface {
	Save(ctx context.Context, tx Tx, c *model.Client) error
	FindByID(ctx context.Context, tx Tx, id int64) (*model.Client, error)
	FindByNationalID(ctx context.Context, tx Tx, nationalID string) (*model.Client, error)
	List(ctx context.Context, tx Tx) ([]*model.Client, error)
	Delete(ctx context.Context, tx Tx, id int64) error
}
