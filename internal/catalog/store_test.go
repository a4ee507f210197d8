package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

func newLoadedStore() *Store {
	store := NewStore()
	store.Dispatch(FetchSuccess{Products: sampleProducts()})

	return store
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	store := newLoadedStore()

	snapshot := store.Snapshot()
	snapshot.Products[0].Name = "cambiado"
	snapshot.Products = snapshot.Products[:1]

	product, ok := store.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Asado", product.Name)
	assert.Len(t, store.Snapshot().Products, 3)
}

func TestStore_Mutate(t *testing.T) {
	t.Parallel()

	store := newLoadedStore()
	name := "Asado banderita"

	applied := store.Mutate("p1", func(p *entity.Product) Action {
		if p.Name != "Asado" {
			return nil
		}

		return PatchProduct{ID: "p1", Patch: entity.ProductPatch{Name: &name}}
	})
	assert.True(t, applied)

	applied = store.Mutate("p1", func(p *entity.Product) Action {
		if p.Name != "Asado" {
			return nil
		}

		return RemoveProduct{ID: "p1"}
	})
	assert.False(t, applied)

	assert.False(t, store.Mutate("missing", func(*entity.Product) Action { return RemoveProduct{ID: "missing"} }))

	product, ok := store.Product("p1")
	require.True(t, ok)
	assert.Equal(t, name, product.Name)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Dispatch(FetchSuccess{})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(AddProduct{Product: &entity.Product{ID: string(rune('A' + i%26)), Name: "x"}})
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, store.Snapshot().Products, 26)
	assert.False(t, store.NeedsLoad())
}

func TestStore_NeedsLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		actions  []Action
		expected bool
	}{
		{name: "never loaded", expected: true},
		{name: "loaded", actions: []Action{FetchSuccess{}}, expected: false},
		{name: "first load failed", actions: []Action{FetchFailure{Message: "unavailable"}}, expected: true},
		{
			name: "refresh failed over a loaded catalog",
			actions: []Action{
				FetchSuccess{Products: []*entity.Product{{ID: "p1"}}},
				FetchFailure{Message: "unavailable"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore()
			for _, action := range tt.actions {
				store.Dispatch(action)
			}
			assert.Equal(t, tt.expected, store.NeedsLoad())
		})
	}
}
