//go:build !integration

package postgres

import (
	"context"
	"time"

	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
	red "elite-gym-console/internal/infra/redis"
)

// --- Mocks for Cache Decorator Tests ---

// mockInnerClientRepo mocks the database repository that the Client decorator wraps.
type mockInnerClientRepo struct {
	SaveFunc             func(ctx context.Context, tx repository.Tx, c *model.Client) error
	FindByIDFunc         func(ctx context.Context, tx repository.Tx, id int64) (*model.Client, error)
	FindByNationalIDFunc func(ctx context.Context, tx repository.Tx, nationalID string) (*model.Client, error)
	ListFunc             func(ctx context.Context, tx repository.Tx) ([]*model.Client, error)
	DeleteFunc           func(ctx context.Context, tx repository.Tx, id int64) error
}

func (m *mockInnerClientRepo) Save(ctx context.Context, tx repository.Tx, c *model.Client) error {
	return m.SaveFunc(ctx, tx, c)
}
func (m *mockInnerClientRepo) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Client, error) {
	return m.FindByIDFunc(ctx, tx, id)
}
func (m *mockInnerClientRepo) FindByNationalID(ctx context.Context, tx repository.Tx, nationalID string) (*model.Client, error) {
	return m.FindByNationalIDFunc(ctx, tx, nationalID)
}
func (m *mockInnerClientRepo) List(ctx context.Context, tx repository.Tx) ([]*model.Client, error) {
	return m.ListFunc(ctx, tx)
}
func (m *mockInnerClientRepo) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	return m.DeleteFunc(ctx, tx, id)
}

// mockRedisClient mocks our Redis client wrapper.
type mockRedisClient struct {
	GetFunc   func(ctx context.Context, key string) (string, error)
	SetFunc   func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelFunc   func(ctx context.Context, keys ...string) error
	PingFunc  func(ctx context.Context) error
	CloseFunc func() error
}

var _ red.RedisClient = &mockRedisClient{}

func (m *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	return m.GetFunc(ctx, key)
}
func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.SetFunc(ctx, key, value, expiration)
}
func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	return m.DelFunc(ctx, keys...)
}
func (m *mockRedisClient) Ping(ctx context.Context) error { return m.PingFunc(ctx) }
func (m *mockRedisClient) Close() error                   { return m.CloseFunc() }
