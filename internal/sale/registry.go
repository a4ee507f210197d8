package sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
	"github.com/LudwingValecillos/VentaCarniceria/internal/infra/cache"
)

// Registry keeps open wizards until they are closed or stay idle for longer than the TTL.
type Registry struct {
	wizards *cache.TTL[string, *Wizard]
}

func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{wizards: cache.NewSliding[string, *Wizard](idleTTL)}
}

// Open starts a new wizard.
func (r *Registry) Open() *Wizard {
	w := NewWizard(uuid.NewString())
	r.wizards.Set(w.ID(), w)

	return w
}

// Get returns an open wizard.
func (r *Registry) Get(id string) (*Wizard, error) {
	w, ok := r.wizards.Get(id)
	if !ok {
		return nil, domainerrors.ErrWizardNotFound
	}

	return w, nil
}

// Close discards a wizard.
func (r *Registry) Close(id string) {
	r.wizards.Delete(id)
}

// Len returns the number of open wizards.
func (r *Registry) Len() int {
	return r.wizards.Len()
}

// Run expires idle wizards every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	r.wizards.Run(ctx, interval)
}
