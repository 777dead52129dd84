package catalogcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-firestore-catalog/internal/eventpublisher"
	"go-firestore-catalog/internal/eventpublisher/event"
	"go-firestore-catalog/internal/model"

	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 16

type Lister interface {
	List(ctx context.Context) ([]model.Product, error)
}

// Cache keeps a snapshot of the product catalog. It is reloaded lazily after
// Invalidate or once the TTL has passed. Failed loads are never cached and a
// non-positive TTL disables caching.
type Cache struct {
	lister Lister
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	products []model.Product
	loadedAt time.Time
	valid    bool
}

func New(lister Lister, ttl time.Duration) *Cache {
	return &Cache{
		lister: lister,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Products returns a copy of the cached catalog, loading it when stale.
func (c *Cache) Products(ctx context.Context) ([]model.Product, error) {
	c.mu.RLock()
	if c.fresh() {
		products := clone(c.products)
		c.mu.RUnlock()
		return products, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// another request may have loaded it meanwhile
	if c.fresh() {
		return clone(c.products), nil
	}

	products, err := c.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c.products = products
	c.loadedAt = c.now()
	c.valid = true

	return clone(products), nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) fresh() bool {
	return c.valid && c.ttl > 0 && c.now().Sub(c.loadedAt) < c.ttl
}

// Run invalidates the cache on every catalog change published by pub.
// It returns when ctx is done or the publisher releases the subscription.
func (c *Cache) Run(ctx context.Context, pub eventpublisher.Publisher) error {
	ch := make(chan event.Event, subscriberBuffer)
	pub.Subscribe(ch)
	defer pub.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-ch:
			if !ok {
				log.Warn().Msg("catalog cache: change feed closed, relying on ttl")
				return nil
			}
			if e.Err != nil {
				log.Warn().Err(e.Err).Msg("catalog cache: change feed error")
			} else if change, ok := e.Message.(event.DocChange); ok {
				log.Debug().Str("productId", change.Id).Stringer("type", change.Type).Msg("catalog cache: invalidate")
			}
			c.Invalidate()
		}
	}
}

func clone(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}
