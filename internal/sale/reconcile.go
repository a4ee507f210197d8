package sale

import "github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"

// StockEffect is what a sale status change does to product stock.
type StockEffect int

const (
	EffectNone StockEffect = iota
	// EffectDeduct removes the sold quantities from stock.
	EffectDeduct
	// EffectRestore gives the sold quantities back to stock.
	EffectRestore
)

func (e StockEffect) String() string {
	switch e {
	case EffectDeduct:
		return "deduct"
	case EffectRestore:
		return "restore"
	default:
		return "none"
	}
}

// DecideStockEffect returns the stock effect of moving a sale from prev to next.
// Only transitions that cross the completed boundary touch stock.
func DecideStockEffect(prev, next entity.SaleStatus) StockEffect {
	switch {
	case prev == next:
		return EffectNone
	case next == entity.SaleStatusCompleted && (prev == entity.SaleStatusPending || prev == entity.SaleStatusCancelled):
		return EffectDeduct
	case prev == entity.SaleStatusCompleted && (next == entity.SaleStatusPending || next == entity.SaleStatusCancelled):
		return EffectRestore
	default:
		return EffectNone
	}
}

// ApplyStockEffect returns the stock that results from applying effect for quantity.
func ApplyStockEffect(effect StockEffect, current, quantity float64) float64 {
	switch effect {
	case EffectDeduct:
		return entity.ClampStock(current - quantity)
	case EffectRestore:
		return current + quantity
	default:
		return current
	}
}
