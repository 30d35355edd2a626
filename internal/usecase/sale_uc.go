package usecase

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
	"elite-gym-console/internal/infra/metrics"
)

// Compile-time check
var _ SaleUseCase = (*saleUC)(nil)

// SaleUseCase registers point-of-sale transactions.
type SaleUseCase interface {
	// Register stores the sale and decrements stock for every line inside a
	// single transaction; insufficient stock fails the whole sale.
	Register(ctx context.Context, items []model.SaleItem, paymentMethod string, clientID *int64) (*model.Sale, error)
	List(ctx context.Context) ([]*model.Sale, error)
}

type saleUC struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	tx       repository.TransactionManager
	log      *zerolog.Logger
}

func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository, tx repository.TransactionManager, logger *zerolog.Logger) *saleUC {
	return &saleUC{sales: sales, products: products, tx: tx, log: logger}
}

func (u *saleUC) Register(ctx context.Context, items []model.SaleItem, paymentMethod string, clientID *int64) (*model.Sale, error) {
	sale, err := model.NewSale(items, paymentMethod, clientID)
	if err != nil {
		return nil, err
	}

	err = u.tx.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		for _, it := range sale.Items {
			if err := u.products.DecrementStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return u.sales.Save(ctx, tx, sale)
	})
	if err != nil {
		return nil, err
	}

	units := 0
	for _, it := range sale.Items {
		units += it.Quantity
	}
	metrics.IncSale(sale.PaymentMethod, sale.Total, units)
	u.log.Info().
		Str("sale_id", sale.ID).
		Int64("total", sale.Total).
		Int("items", len(sale.Items)).
		Msg("sale registered")
	return sale, nil
}

func (u *saleUC) List(ctx context.Context) ([]*model.Sale, error) {
	return u.sales.List(ctx, repository.NoTX)
}
