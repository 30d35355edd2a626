package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elite-gym-console/internal/domain/model"
	"elite-gym-console/internal/domain/ports/repository"
	"elite-gym-console/internal/infra/metrics"
	red "elite-gym-console/internal/infra/redis"
)

var _ repository.ClientRepository = (*clientRepoCacheDecorator)(nil)

const clientListKey = "clients:all"

// clientRepoCacheDecorator caches client reads in Redis. The client list is
// read on every payment form render (both selector dropdowns), so it is the
// hottest read path of the console.
type clientRepoCacheDecorator struct {
	inner repository.ClientRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewClientRepoCacheDecorator(inner repository.ClientRepository, cache red.RedisClient, ttl time.Duration) repository.ClientRepository {
	return &clientRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

// Write operations invalidate both the per-id entry and the list.
func (d *clientRepoCacheDecorator) Save(ctx context.Context, tx repository.Tx, c *model.Client) error {
	if err := d.inner.Save(ctx, tx, c); err != nil {
		return err
	}
	_ = d.cache.Del(ctx, clientKey(c.ID), clientListKey)
	return nil
}

func (d *clientRepoCacheDecorator) Delete(ctx context.Context, tx repository.Tx, id int64) error {
	if err := d.inner.Delete(ctx, tx, id); err != nil {
		return err
	}
	_ = d.cache.Del(ctx, clientKey(id), clientListKey)
	return nil
}

func (d *clientRepoCacheDecorator) FindByID(ctx context.Context, tx repository.Tx, id int64) (*model.Client, error) {
	key := clientKey(id)
	if val, err := d.cache.Get(ctx, key); err == nil {
		var c model.Client
		if json.Unmarshal([]byte(val), &c) == nil {
			metrics.IncCacheRequest("client", "hit")
			return &c, nil
		}
	}

	metrics.IncCacheRequest("client", "miss")
	c, err := d.inner.FindByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(c); err == nil {
		_ = d.cache.Set(ctx, key, b, d.ttl)
	}
	return c, nil
}

// FindByNationalID is a rare lookup; it goes straight to the store.
func (d *clientRepoCacheDecorator) FindByNationalID(ctx context.Context, tx repository.Tx, nationalID string) (*model.Client, error) {
	return d.inner.FindByNationalID(ctx, tx, nationalID)
}

func (d *clientRepoCacheDecorator) List(ctx context.Context, tx repository.Tx) ([]*model.Client, error) {
	if val, err := d.cache.Get(ctx, clientListKey); err == nil {
		var cs []*model.Client
		if json.Unmarshal([]byte(val), &cs) == nil {
			metrics.IncCacheRequest("client_list", "hit")
			return cs, nil
		}
	}

	metrics.IncCacheRequest("client_list", "miss")
	cs, err := d.inner.List(ctx, tx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(cs); err == nil {
		_ = d.cache.Set(ctx, clientListKey, b, d.ttl)
	}
	return cs, nil
}

func clientKey(id int64) string { return fmt.Sprintf("client:id:%d", id) }
