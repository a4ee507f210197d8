package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/cache"
)

// Registry keeps customer carts until checkout or until they stay idle for longer than the TTL.
type Registry struct {
	carts *cache.TTL[string, *Cart]
}

func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{carts: cache.NewSliding[string, *Cart](idleTTL)}
}

// Open creates an empty cart.
func (r *Registry) Open() *Cart {
	c := New(uuid.NewString())
	r.carts.Set(c.ID(), c)

	return c
}

// Get returns an open cart.
func (r *Registry) Get(id string) (*Cart, error) {
	c, ok := r.carts.Get(id)
	if !ok {
		return nil, domainerrors.ErrCartNotFound
	}

	return c, nil
}

// Discard removes a cart.
func (r *Registry) Discard(id string) {
	r.carts.Delete(id)
}

// Run expires idle carts every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	r.carts.Run(ctx, interval)
}
