package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	domainerrors "github.com/LudwingValecillos/VentaCarniceria/internal/domain/errors"
)

var (
	asado   = &entity.Product{ID: "p1", Name: "Asado", Price: 8500, Category: "vacuno", Active: true, Stock: 10}
	chorizo = &entity.Product{ID: "p2", Name: "Chorizo", Price: 4100.5, Category: "embutidos", Active: true, Stock: 10}
)

func TestCart_AddTwiceGivesOneAndAHalf(t *testing.T) {
	t.Parallel()

	c := New("c1")
	require.NoError(t, c.Add(asado))
	require.NoError(t, c.Add(asado))

	items := c.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 1.5, items[0].Quantity, 1e-9)
	assert.InDelta(t, 12750, c.Total(), 1e-9)
}

func TestCart_AddInactiveRejected(t *testing.T) {
	t.Parallel()

	c := New("c1")
	err := c.Add(&entity.Product{ID: "x", Name: "Mondongo", Active: false})
	require.ErrorIs(t, err, domainerrors.ErrProductInactive)
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		productID  string
		quantity   float64
		wantErr    error
		wantItems  int
		wantAmount float64
	}{
		{name: "update", productID: "p1", quantity: 2, wantItems: 2, wantAmount: 2*8500 + 4100.5},
		{name: "zero removes", productID: "p1", quantity: 0, wantItems: 1, wantAmount: 4100.5},
		{name: "unknown product", productID: "nope", quantity: 1, wantErr: domainerrors.ErrLineNotFound, wantItems: 2, wantAmount: 8500 + 4100.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New("c1")
			require.NoError(t, c.Add(asado))
			require.NoError(t, c.Add(chorizo))

			err := c.SetQuantity(tt.productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, c.Items(), tt.wantItems)
			assert.InDelta(t, tt.wantAmount, c.Total(), 1e-9)
		})
	}
}

func TestCart_RemoveAndSummary(t *testing.T) {
	t.Parallel()

	c := New("c1")
	require.NoError(t, c.Add(asado))
	require.NoError(t, c.Add(chorizo))
	require.NoError(t, c.Add(chorizo))
	c.Remove("p1")
	c.Remove("p1")

	summary := c.Summary()
	assert.Equal(t, "c1", summary.ID)
	require.Len(t, summary.Items, 1)
	assert.InDelta(t, 1.5, summary.TotalQuantity, 1e-9)
	assert.InDelta(t, 6150.75, summary.Total, 1e-9)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(time.Hour)
	c := registry.Open()

	got, err := registry.Get(c.ID())
	require.NoError(t, err)
	assert.Same(t, c, got)

	registry.Discard(c.ID())
	_, err = registry.Get(c.ID())
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}
