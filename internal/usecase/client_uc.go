package usecase

import (
	"context"
	"errors"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
)

// Compile-time check
var _ ClientUseCase = (*clientUC)(nil)

// ClientUseCase manages the member registry.
type ClientUseCase interface {
	Register(ctx context.Context, name, surname, nationalID, phone, email string, registeredAt model.Date) (*model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id int64) (*model.Client, error)
	List(ctx context.Context) ([]*model.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientUC struct {
	clients repository.ClientRepository
}

func NewClientUseCase(clients repository.ClientRepository) *clientUC {
	return &clientUC{clients: clients}
}

// Register creates a member. The national id is the natural key; a second
// registration with the same one fails with ErrAlreadyExists.
func (u *clientUC) Register(ctx context.Context, name, surname, nationalID, phone, email string, registeredAt model.Date) (*model.Client, error) {
	c, err := model.NewClient(name, surname, nationalID, phone, email, registeredAt)
	if err != nil {
		return nil, err
	}
	if existing, err := u.clients.FindByNationalID(ctx, repository.NoTX, c.NationalID); err == nil && existing != nil {
		return nil, domain.ErrAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err := u.clients.Save(ctx, repository.NoTX, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *clientUC) Update(ctx context.Context, c *model.Client) error {
	if c.ID == 0 {
		return domain.ErrInvalidArgument
	}
	return u.clients.Save(ctx, repository.NoTX, c)
}

func (u *clientUC) Get(ctx context.Context, id int64) (*model.Client, error) {
	return u.clients.FindByID(ctx, repository.NoTX, id)
}

func (u *clientUC) List(ctx context.Context) ([]*model.Client, error) {
	return u.clients.List(ctx, repository.NoTX)
}

func (u *clientUC) Delete(ctx context.Context, id int64) error {
	return u.clients.Delete(ctx, repository.NoTX, id)
}
