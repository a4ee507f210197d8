package catalog

import (
	"sync"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

// Store is the explicitly shared holder of the catalog State. All writes go through Dispatch.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an empty, uninitialized store.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies action to the current state.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
}

// Mutate performs an atomic read-modify-write on the product with id. fn receives a
// copy of the current product and returns the action to apply, or nil to leave the
// state untouched. It reports whether an action was applied.
func (s *Store) Mutate(id string, fn func(current *entity.Product) Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.state.Products, id)
	if idx < 0 {
		return false
	}
	action := fn(s.state.Products[idx].Clone())
	if action == nil {
		return false
	}
	s.state = Reduce(s.state, action)

	return true
}

// Snapshot returns a copy of the state that callers may keep or modify.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state
	snapshot.Products = make([]*entity.Product, len(s.state.Products))
	for idx, product := range s.state.Products {
		snapshot.Products[idx] = product.Clone()
	}

	return snapshot
}

// Product returns a copy of the product with id.
func (s *Store) Product(id string) (*entity.Product, bool) {
	product, _, ok := s.productAt(id)

	return product, ok
}

func (s *Store) productAt(id string) (*entity.Product, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := indexOf(s.state.Products, id)
	if idx < 0 {
		return nil, -1, false
	}

	return s.state.Products[idx].Clone(), idx, true
}

// NeedsLoad reports whether the catalog has never been loaded, or whether its
// last load failed and left it empty.
func (s *Store) NeedsLoad() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.state.Initialized || (s.state.Error != "" && len(s.state.Products) == 0)
}
