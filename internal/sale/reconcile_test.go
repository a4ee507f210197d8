package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
)

func TestDecideStockEffect(t *testing.T) {
	t.Parallel()

	var (
		completed = entity.SaleStatusCompleted
		pending   = entity.SaleStatusPending
		cancelled = entity.SaleStatusCancelled
	)

	tests := []struct {
		prev entity.SaleStatus
		next entity.SaleStatus
		want StockEffect
	}{
		{prev: completed, next: completed, want: EffectNone},
		{prev: completed, next: pending, want: EffectRestore},
		{prev: completed, next: cancelled, want: EffectRestore},
		{prev: pending, next: completed, want: EffectDeduct},
		{prev: pending, next: pending, want: EffectNone},
		{prev: pending, next: cancelled, want: EffectNone},
		{prev: cancelled, next: completed, want: EffectDeduct},
		{prev: cancelled, next: pending, want: EffectNone},
		{prev: cancelled, next: cancelled, want: EffectNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.prev)+"->"+string(tt.next), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DecideStockEffect(tt.prev, tt.next))
		})
	}
}

func TestApplyStockEffect(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 8, ApplyStockEffect(EffectDeduct, 10, 2), 1e-9)
	assert.Zero(t, ApplyStockEffect(EffectDeduct, 1, 2.5), "stock never goes negative")
	assert.InDelta(t, 12.5, ApplyStockEffect(EffectRestore, 10, 2.5), 1e-9)
	assert.InDelta(t, 10, ApplyStockEffect(EffectNone, 10, 2.5), 1e-9)
}
