package repository

import (
	"context"

	"elite-gym-console/internal/domain/model"
)

// ProductRepository is the port for the point-of-sale catalog.
type ProductRepository interface {
	Save(ctx context.Context, tx Tx, p *model.Product) error
	FindByID(ctx context.Context, tx Tx, id int64) (*model.Product, error)
	List(ctx context.Context, tx Tx) ([]*model.Product, error)
	Delete(ctx context.Context, tx Tx, id int64) error
	// DecrementStock subtracts quantity from a product's stock and returns
	// domain.ErrInsufficientStock when stock would go negative. Meant to run
	// inside the sale transaction.
	DecrementStock(ctx context.Context, tx Tx, productID int64, quantity int) error
}

// ProductUnits is a top-seller ranking row.
type ProductUnits struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
}

// SaleRepository is the port for completed sales.
type SaleRepository interface {
	Save(ctx context.Context, tx Tx, s *model.Sale) error
	List(ctx context.Context, tx Tx) ([]*model.Sale, error)
	SumByPeriod(ctx context.Context, tx Tx, period string) (int64, error)
	TopProducts(ctx context.Context, tx Tx, limit int) ([]ProductUnits, error)
}
