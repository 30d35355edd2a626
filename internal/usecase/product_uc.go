package usecase

import (
	"context"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

// Compile-time check
var _ ProductUseCase = (*productUC)(nil)

// ProductUseCase manages the point-of-sale catalog.
type ProductUseCase interface {
	Create(ctx context.Context, name string, price int64, stock int, category, description string) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Get(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productUC struct {
	products repository.ProductRepository
}

func NewProductUseCase(products repository.ProductRepository) *productUC {
	return &productUC{products: products}
}

func (u *productUC) Create(ctx context.Context, name string, price int64, stock int, category, description string) (*model.Product, error) {
	p, err := model.NewProduct(name, price, stock, category, description)
	if err != nil {
		return nil, err
	}
	if err := u.products.Save(ctx, repository.NoTX, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *productUC) Update(ctx context.Context, p *model.Product) error {
	if p.ID == 0 {
		return domain.ErrInvalidArgument
	}
	return u.products.Save(ctx, repository.NoTX, p)
}

func (u *productUC) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.FindByID(ctx, repository.NoTX, id)
}

func (u *productUC) List(ctx context.Context) ([]*model.Product, error) {
	return u.products.List(ctx, repository.NoTX)
}

func (u *productUC) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, repository.NoTX, id)
}
