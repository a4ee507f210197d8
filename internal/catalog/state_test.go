package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "p1", Name: "Asado", Price: 8500, Category: "vacuno", Active: true, Stock: 12},
		{ID: "p2", Name: "Vacío", Price: 9200, Category: "vacuno", Active: true, Stock: 3.5},
		{ID: "p3", Name: "Chorizo", Price: 4100, Category: "embutidos", Active: false, Stock: 0},
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func TestReduce_FetchLifecycle(t *testing.T) {
	t.Parallel()

	state := Reduce(State{}, FetchStart{})
	assert.True(t, state.Loading)
	assert.False(t, state.Initialized)

	state = Reduce(state, FetchSuccess{Products: sampleProducts()})
	assert.False(t, state.Loading)
	assert.True(t, state.Initialized)
	assert.Empty(t, state.Error)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(state.Products))

	state = Reduce(state, FetchStart{})
	state = Reduce(state, FetchFailure{Message: "sin conexión"})
	assert.False(t, state.Loading)
	assert.True(t, state.Initialized)
	assert.Equal(t, "sin conexión", state.Error)
	assert.Len(t, state.Products, 3, "a failed reload keeps the previous products")
}

func TestReduce_FetchFailureInitializes(t *testing.T) {
	t.Parallel()

	state := Reduce(Reduce(State{}, FetchStart{}), FetchFailure{Message: "boom"})
	assert.True(t, state.Initialized)
	assert.Empty(t, state.Products)
}

func TestReduce_FetchSuccessDeduplicates(t *testing.T) {
	t.Parallel()

	products := append(sampleProducts(), &entity.Product{ID: "p1", Name: "Asado de tira", Price: 9000})
	state := Reduce(State{}, FetchSuccess{Products: products})

	require.Len(t, state.Products, 3)
	assert.Equal(t, "Asado de tira", state.Products[0].Name)
}

func TestReduce_StructuralActions(t *testing.T) {
	t.Parallel()

	base := Reduce(State{}, FetchSuccess{Products: sampleProducts()})
	price := 9999.0

	tests := []struct {
		name    string
		action  Action
		wantIDs []string
		check   func(t *testing.T, state State)
	}{
		{
			name:    "add appends",
			action:  AddProduct{Product: &entity.Product{ID: "p4", Name: "Matambre"}},
			wantIDs: []string{"p1", "p2", "p3", "p4"},
		},
		{
			name:    "add with existing id replaces",
			action:  AddProduct{Product: &entity.Product{ID: "p2", Name: "Vacío premium"}},
			wantIDs: []string{"p1", "p2", "p3"},
			check: func(t *testing.T, state State) {
				assert.Equal(t, "Vacío premium", state.Products[1].Name)
			},
		},
		{
			name:    "remove",
			action:  RemoveProduct{ID: "p2"},
			wantIDs: []string{"p1", "p3"},
		},
		{
			name:    "remove unknown is a no-op",
			action:  RemoveProduct{ID: "nope"},
			wantIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:    "replace swaps id",
			action:  ReplaceProduct{ID: "p2", Product: &entity.Product{ID: "real-2", Name: "Vacío"}},
			wantIDs: []string{"p1", "real-2", "p3"},
		},
		{
			name:    "replace drops duplicate of the new id",
			action:  ReplaceProduct{ID: "p2", Product: &entity.Product{ID: "p3", Name: "Chorizo"}},
			wantIDs: []string{"p1", "p3"},
		},
		{
			name:    "restore at index",
			action:  RestoreProduct{Product: &entity.Product{ID: "p0"}, Index: 1},
			wantIDs: []string{"p1", "p0", "p2", "p3"},
		},
		{
			name:    "restore beyond the end appends",
			action:  RestoreProduct{Product: &entity.Product{ID: "p0"}, Index: 42},
			wantIDs: []string{"p1", "p2", "p3", "p0"},
		},
		{
			name:    "patch",
			action:  PatchProduct{ID: "p1", Patch: entity.ProductPatch{Price: &price}},
			wantIDs: []string{"p1", "p2", "p3"},
			check: func(t *testing.T, state State) {
				assert.InDelta(t, 9999.0, state.Products[0].Price, 0.001)
				assert.Equal(t, "Asado", state.Products[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := Reduce(base, tt.action)
			assert.Equal(t, tt.wantIDs, ids(next.Products))
			assert.Equal(t, base.Loading, next.Loading)
			assert.Equal(t, base.Initialized, next.Initialized)
			if tt.check != nil {
				tt.check(t, next)
			}
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := Reduce(State{}, FetchSuccess{Products: sampleProducts()})
	before := make([]entity.Product, len(base.Products))
	for i, p := range base.Products {
		before[i] = *p
	}

	active := false
	_ = Reduce(base, PatchProduct{ID: "p1", Patch: entity.ProductPatch{Active: &active}})
	_ = Reduce(base, RemoveProduct{ID: "p2"})
	_ = Reduce(base, RestoreProduct{Product: &entity.Product{ID: "p9"}, Index: 0})

	require.Len(t, base.Products, len(before))
	for i, p := range base.Products {
		assert.Equal(t, before[i], *p)
	}
}

func TestReduce_PatchStockClamped(t *testing.T) {
	t.Parallel()

	stock := -3.0
	state := Reduce(State{Products: sampleProducts()}, PatchProduct{ID: "p2", Patch: entity.ProductPatch{Stock: &stock}})
	assert.Zero(t, state.Products[1].Stock)
}
